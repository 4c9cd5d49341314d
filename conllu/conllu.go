// Package conllu reads CoNLL-U files into annotated sentences.
//
// See https://universaldependencies.org/format.html. Multiword token ranges
// (1-2) and empty nodes (1.1) are skipped, only the syntactic words are kept.
package conllu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	sent "github.com/revelaction/lds/sentence"
)

const (
	fieldSeparator = "\t"
	numFields      = 10
	empty          = "_"

	sentIdComment = "sent_id"
	textComment   = "text"
)

var ErrFields = errors.New("wrong number of fields")

// ReadFile parses the CoNLL-U file at path.
func ReadFile(path string) ([]sent.Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()

	sentences, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sentences, nil
}

// Read parses all sentences of a CoNLL-U stream. Sentence ids are assigned
// in reading order, starting at 0.
func Read(r io.Reader) ([]sent.Sentence, error) {
	var (
		sentences []sent.Sentence
		current   sent.Sentence
		open      bool
		lineNum   int
	)

	flush := func() {
		if open && len(current.Tokens) > 0 {
			current.Id = len(sentences)
			sentences = append(sentences, current)
		}
		current = sent.Sentence{}
		open = false
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		open = true

		if strings.HasPrefix(line, "#") {
			parseComment(line, &current)
			continue
		}

		tk, skip, err := ParseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if skip {
			continue
		}
		current.Tokens = append(current.Tokens, tk)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	flush()
	return sentences, nil
}

func parseComment(line string, s *sent.Sentence) {
	body := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, value, found := strings.Cut(body, "=")
	if !found {
		return
	}

	switch strings.TrimSpace(key) {
	case sentIdComment:
		s.Meta = strings.TrimSpace(value)
	case textComment:
		s.Text = strings.TrimSpace(value)
	}
}

// ParseRow parses a single token line. skip is true for multiword ranges and
// empty nodes.
func ParseRow(line string) (tk sent.Token, skip bool, err error) {
	fields := strings.Split(line, fieldSeparator)
	if len(fields) != numFields {
		return tk, false, fmt.Errorf("%w: got %d, want %d", ErrFields, len(fields), numFields)
	}

	if strings.ContainsAny(fields[0], "-.") {
		return tk, true, nil
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tk, false, fmt.Errorf("error parsing ID field (%s): %w", fields[0], err)
	}

	tk = sent.Token{
		Id:    id,
		Text:  fields[1],
		Lemma: value(fields[2]),
		Pos:   value(fields[3]),
		Tag:   value(fields[4]),
		Feats: value(fields[5]),
		Dep:   value(fields[7]),
		Misc:  value(fields[9]),
	}

	head := fields[6]
	if head == empty {
		tk.Head = sent.UnattachedGovernor()
		return tk, false, nil
	}

	n, err := strconv.Atoi(head)
	if err != nil {
		return tk, false, fmt.Errorf("error parsing HEAD field (%s): %w", head, err)
	}
	tk.Head = sent.GovernorFromInt(n)

	return tk, false, nil
}

func value(field string) string {
	if field == empty {
		return ""
	}
	return field
}
