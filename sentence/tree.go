package sentence

import (
	"fmt"
	"sort"
)

// Tree is the dependency tree of one sentence. Child sets are derived from
// the governors once, in NewTree, and never change afterwards; a Tree is
// safe for concurrent reads.
type Tree struct {
	tokens []Token

	// index of each token id in tokens
	pos map[int]int

	kids map[int][]int
}

// NewTree builds a Tree from tokens in sentence order. Ids must be positive,
// unique and ascending; gaps are allowed.
func NewTree(tokens []Token) (*Tree, error) {
	t := &Tree{
		tokens: make([]Token, len(tokens)),
		pos:    make(map[int]int, len(tokens)),
		kids:   make(map[int][]int, len(tokens)),
	}
	copy(t.tokens, tokens)

	prev := 0
	for i, tk := range t.tokens {
		if tk.Id <= prev {
			return nil, fmt.Errorf("token %q: id %d not ascending after %d", tk.Text, tk.Id, prev)
		}
		t.pos[tk.Id] = i
		prev = tk.Id
	}

	for _, tk := range t.tokens {
		gov, ok := tk.Head.Id()
		if !ok {
			continue
		}
		if _, exists := t.pos[gov]; !exists {
			continue
		}
		t.kids[gov] = append(t.kids[gov], tk.Id)
	}

	for _, k := range t.kids {
		sort.Ints(k)
	}

	return t, nil
}

// MustTree is like NewTree but panics on error. Meant for literals in tests.
func MustTree(tokens []Token) *Tree {
	t, err := NewTree(tokens)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of tokens.
func (t *Tree) Len() int {
	return len(t.tokens)
}

// Ids returns the token ids in sentence order.
func (t *Tree) Ids() []int {
	ids := make([]int, len(t.tokens))
	for i, tk := range t.tokens {
		ids[i] = tk.Id
	}
	return ids
}

// Tokens returns the tokens in sentence order. The slice must not be
// modified.
func (t *Tree) Tokens() []Token {
	return t.tokens
}

// Token returns the token with the given id.
func (t *Tree) Token(id int) (Token, bool) {
	i, ok := t.pos[id]
	if !ok {
		return Token{}, false
	}
	return t.tokens[i], true
}

// Has reports whether the tree contains a token with the given id.
func (t *Tree) Has(id int) bool {
	_, ok := t.pos[id]
	return ok
}

// Governor returns the governor of token id. Unknown ids are Unattached.
func (t *Tree) Governor(id int) Governor {
	tk, ok := t.Token(id)
	if !ok {
		return UnattachedGovernor()
	}
	return tk.Head
}

// Kids returns the ascending ids of the tokens directly governed by id. The
// slice must not be modified.
func (t *Tree) Kids(id int) []int {
	return t.kids[id]
}

// Surface joins the surface forms of the given token ids.
func (t *Tree) Surface(ids []int) string {
	tokens := make([]Token, 0, len(ids))
	for _, id := range ids {
		if tk, ok := t.Token(id); ok {
			tokens = append(tokens, tk)
		}
	}
	return Surface(tokens)
}

// Sentence joins the surface forms of all tokens in sentence order.
func (t *Tree) Sentence() string {
	return Surface(t.tokens)
}
