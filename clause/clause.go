// Package clause segments a dependency tree into clauses.
//
// A clause is headed by an anchor (a finite verb, or a subordinating
// conjunction governing one) and contains every descendant of the anchor
// that is not itself inside a nested clause.
package clause

import (
	"errors"
	"fmt"
	"sort"

	sent "github.com/revelaction/lds/sentence"
)

var ErrOverlap = errors.New("clauses overlap")

// Clause is the ascending sequence of token ids of one clause. Anchor is
// always one of the Ids.
type Clause struct {
	Anchor int
	Ids    []int
}

// Analysis holds the anchor status of every token of a tree. It is computed
// once and shared by the boundary search and the segmentation.
type Analysis struct {
	tree    *sent.Tree
	anchors map[int]bool

	// anchor ids in sentence order
	order []int
}

// Analyze classifies every token of t.
func Analyze(t *sent.Tree) *Analysis {
	a := &Analysis{
		tree:    t,
		anchors: make(map[int]bool, t.Len()),
	}

	for _, id := range t.Ids() {
		if IsAnchor(t, id) {
			a.anchors[id] = true
			a.order = append(a.order, id)
		}
	}

	return a
}

func (a *Analysis) Tree() *sent.Tree {
	return a.tree
}

func (a *Analysis) IsAnchor(id int) bool {
	return a.anchors[id]
}

// Anchors returns the anchor ids in sentence order.
func (a *Analysis) Anchors() []int {
	return a.order
}

// Boundary collects the clause of the given anchor: the anchor plus its
// descendants, without expanding through nested anchors.
func (a *Analysis) Boundary(anchor int) Clause {
	ids := []int{anchor}
	seen := map[int]bool{anchor: true}

	stack := append([]int(nil), a.tree.Kids(anchor)...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if seen[id] || a.anchors[id] {
			continue
		}
		seen[id] = true

		ids = append(ids, id)
		stack = append(stack, a.tree.Kids(id)...)
	}

	sort.Ints(ids)
	return Clause{Anchor: anchor, Ids: ids}
}

// Clauses returns one clause per anchor, in the sentence order of the
// anchors. A tree without anchors has no clauses.
func (a *Analysis) Clauses() []Clause {
	if len(a.order) == 0 {
		return nil
	}

	clauses := make([]Clause, 0, len(a.order))
	for _, anchor := range a.order {
		clauses = append(clauses, a.Boundary(anchor))
	}
	return clauses
}

// Segment returns the clauses of t.
func Segment(t *sent.Tree) []Clause {
	return Analyze(t).Clauses()
}

// IsComplete reports whether every token of t has a governor.
func IsComplete(t *sent.Tree) bool {
	for _, tk := range t.Tokens() {
		if tk.Head.IsUnattached() {
			return false
		}
	}
	return true
}

// Verify returns ErrOverlap if a token id belongs to more than one clause.
func Verify(clauses []Clause) error {
	owner := map[int]int{}
	for _, c := range clauses {
		for _, id := range c.Ids {
			if other, ok := owner[id]; ok {
				return fmt.Errorf("%w: token %d in clauses of anchors %d and %d", ErrOverlap, id, other, c.Anchor)
			}
			owner[id] = c.Anchor
		}
	}
	return nil
}
