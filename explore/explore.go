// Package explore is an interactive prompt to inspect the clause and LDS
// segmentation of single sentences of a corpus.
package explore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/render"
	sent "github.com/revelaction/lds/sentence"
	"github.com/revelaction/lds/storage"
)

const (
	cmdTokens = "tokens"
	cmdFind   = "find"
	cmdQuit   = "quit"

	// maximum number of sentences listed by find
	findLimit = 20
)

var ErrUsage = errors.New("usage: <docId> <sentenceId> | tokens <docId> <sentenceId> | find <docId> <word> | quit")

type Handler struct {
	DocRepo  storage.DocReader
	Renderer *render.Renderer
	Options  batch.Options

	titles []sent.Doc
	docs   map[int]sent.Doc
}

func NewHandler(dr storage.DocReader, r *render.Renderer, opts batch.Options) *Handler {
	return &Handler{
		DocRepo:  dr,
		Renderer: r,
		Options:  opts,
		docs:     map[int]sent.Doc{},
	}
}

func (h *Handler) Run() error {
	titles, err := h.DocRepo.List()
	if err != nil {
		return err
	}
	h.titles = titles

	fmt.Fprintln(h.Renderer.Out, "🔑 Ctrl+F: next strategy, Ctrl+X: toggle punctuation, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      ✍  ", h.completer,
			prompt.OptionTitle("lds explore"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlF,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextStrategy()
					fmt.Fprintf(h.Renderer.Out, "Strategies set to: %v\n", h.Renderer.Strategies)
				}}),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Options.KeepPunct = !h.Options.KeepPunct
					fmt.Fprintf(h.Renderer.Out, "Keep punctuation set to %t\n", h.Options.KeepPunct)
				}}),
		)

		if strings.TrimSpace(in) == cmdQuit {
			return nil
		}

		history = append(history, in)

		if err := h.Execute(in); err != nil {
			fmt.Fprintf(h.Renderer.Out, "%v\n", err)
		}
	}
}

// Execute runs one prompt line.
func (h *Handler) Execute(in string) error {
	fields := strings.Fields(in)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case cmdTokens:
		s, err := h.sentence(fields[1:])
		if err != nil {
			return err
		}
		res := batch.Process(s, h.Options)
		if res.Tree == nil {
			return res.Err
		}
		h.Renderer.Tokens(res.Tree)
		return nil

	case cmdFind:
		if len(fields) != 3 {
			return ErrUsage
		}
		return h.find(fields[1], fields[2])
	}

	s, err := h.sentence(fields)
	if err != nil {
		return err
	}

	prefix := fmt.Sprintf("✍  %d-%d ", s.DocId, s.Id)
	h.Renderer.Result(batch.Process(s, h.Options), prefix)
	return nil
}

func (h *Handler) doc(arg string) (sent.Doc, error) {
	docId, err := strconv.Atoi(arg)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("invalid docId: %v", err)
	}

	if doc, ok := h.docs[docId]; ok {
		return doc, nil
	}

	doc, err := h.DocRepo.Read(docId)
	if err != nil {
		return sent.Doc{}, err
	}
	h.docs[docId] = doc
	return doc, nil
}

func (h *Handler) sentence(args []string) (sent.Sentence, error) {
	if len(args) != 2 {
		return sent.Sentence{}, ErrUsage
	}

	doc, err := h.doc(args[0])
	if err != nil {
		return sent.Sentence{}, err
	}

	sentId, err := strconv.Atoi(args[1])
	if err != nil {
		return sent.Sentence{}, fmt.Errorf("invalid sentenceId: %v", err)
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return sent.Sentence{}, fmt.Errorf("sentence index %d out of bounds (doc has %d sentences)", sentId, len(doc.Sentences))
	}

	return doc.Sentences[sentId], nil
}

// find lists the sentences of a doc containing a word form or lemma.
func (h *Handler) find(docArg, word string) error {
	doc, err := h.doc(docArg)
	if err != nil {
		return err
	}

	found := 0
	for _, s := range doc.Sentences {
		if !contains(s.Tokens, word) {
			continue
		}
		res := batch.Process(s, h.Options)
		if res.Tree == nil {
			continue
		}
		h.Renderer.Sentence(res.Tree, fmt.Sprintf("✍  %d-%d ", s.DocId, s.Id))

		found++
		if found == findLimit {
			break
		}
	}

	if found == 0 {
		fmt.Fprintf(h.Renderer.Out, "no sentence with %q\n", word)
	}
	return nil
}

func contains(tokens []sent.Token, word string) bool {
	for _, tk := range tokens {
		if strings.EqualFold(tk.Text, word) || tk.Lemma == word {
			return true
		}
	}
	return false
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	return h.suggest(in.TextBeforeCursor())
}

// suggest completes the commands on the first word and the doc ids on the
// word holding the docId.
func (h *Handler) suggest(befCursor string) []prompt.Suggest {
	s := []prompt.Suggest{}

	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	last := tokens[len(tokens)-1]

	docPos := 0
	if tokens[0] == cmdTokens || tokens[0] == cmdFind {
		docPos = 1
	}

	if len(tokens) == 1 {
		for _, c := range []string{cmdTokens, cmdFind, cmdQuit} {
			if strings.HasPrefix(c, last) {
				s = append(s, prompt.Suggest{Text: c})
			}
		}
	}

	if len(tokens)-1 == docPos {
		for _, d := range h.titles {
			id := strconv.Itoa(d.Id)
			if strings.HasPrefix(id, last) {
				s = append(s, prompt.Suggest{Text: id, Description: "📖 " + d.Title})
			}
		}
	}

	return s
}
