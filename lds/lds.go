// Package lds chunks a clause into Linear Dependency Segments: maximal runs
// of tokens in which every token is syntactically linked to the previous
// one.
package lds

import (
	"errors"
	"fmt"
	"strings"

	sent "github.com/revelaction/lds/sentence"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy selects the linking condition between consecutive clause tokens.
type Strategy int

const (
	// Syntactic links consecutive clause tokens that form a syntactic
	// bigram, whatever their distance in the sentence.
	Syntactic Strategy = 1

	// Adjacent additionally requires the tokens to be neighbours in the
	// sentence, so gaps (stripped punctuation, tokens of other clauses)
	// always break a segment.
	Adjacent Strategy = 2
)

func (s Strategy) String() string {
	switch s {
	case Syntactic:
		return "syntactic"
	case Adjacent:
		return "adjacent"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Strategies returns the supported strategies.
func Strategies() []Strategy {
	return []Strategy{Syntactic, Adjacent}
}

// ParseStrategy accepts the strategy number or its name.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "syntactic":
		return Syntactic, nil
	case "2", "adjacent":
		return Adjacent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

// Segment is a contiguous run of clause token ids.
type Segment []int

// IsBigram reports whether a governs b or b governs a.
func IsBigram(t *sent.Tree, a, b int) bool {
	return t.Governor(a).Is(b) || t.Governor(b).Is(a)
}

// Split partitions the clause ids into segments according to s. The
// concatenation of the segments is always the clause.
func Split(t *sent.Tree, clause []int, s Strategy) ([]Segment, error) {
	switch s {
	case Syntactic:
		return SplitSyntactic(t, clause), nil
	case Adjacent:
		return SplitAdjacent(t, clause), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
}

// SplitSyntactic starts a new segment whenever a clause token is not a
// syntactic bigram with the clause token before it.
func SplitSyntactic(t *sent.Tree, clause []int) []Segment {
	return split(clause, func(prev, cur int) bool {
		return IsBigram(t, prev, cur)
	})
}

// SplitAdjacent starts a new segment whenever a clause token is not the
// sentence neighbour of the clause token before it, or does not form a
// syntactic bigram with it.
func SplitAdjacent(t *sent.Tree, clause []int) []Segment {
	return split(clause, func(prev, cur int) bool {
		return prev+1 == cur && IsBigram(t, prev, cur)
	})
}

func split(clause []int, linked func(prev, cur int) bool) []Segment {
	if len(clause) == 0 {
		return nil
	}

	segments := []Segment{{clause[0]}}
	for i := 1; i < len(clause); i++ {
		if linked(clause[i-1], clause[i]) {
			last := len(segments) - 1
			segments[last] = append(segments[last], clause[i])
			continue
		}
		segments = append(segments, Segment{clause[i]})
	}

	return segments
}
