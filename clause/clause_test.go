package clause

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	sent "github.com/revelaction/lds/sentence"
)

// "Včera jsem řekla, že Jana je nemocná." in SUD annotation (the auxiliary
// and the conjunction head their phrases), punctuation stripped.
func sudTree() *sent.Tree {
	return sent.MustTree([]sent.Token{
		{Id: 1, Text: "Včera", Pos: "ADV", Tag: "Db-------------", Head: sent.GovernedBy(2)},
		{Id: 2, Text: "jsem", Pos: "AUX", Tag: "VB-S---1P-AA---", Head: sent.RootGovernor()},
		{Id: 3, Text: "řekla", Pos: "VERB", Tag: "VpQW---XR-AA---", Head: sent.GovernedBy(2)},
		{Id: 5, Text: "že", Pos: "SCONJ", Tag: "J,-------------", Head: sent.GovernedBy(3)},
		{Id: 6, Text: "Jana", Pos: "PROPN", Tag: "NNFS1-----A----", Head: sent.GovernedBy(7)},
		{Id: 7, Text: "je", Pos: "AUX", Tag: "VB-S---3P-AA---", Head: sent.GovernedBy(5)},
		{Id: 8, Text: "nemocná", Pos: "ADJ", Tag: "AAFS1----1A----", Head: sent.GovernedBy(7)},
	})
}

// The same sentence in UD annotation.
func udTree() *sent.Tree {
	return sent.MustTree([]sent.Token{
		{Id: 1, Text: "Včera", Pos: "ADV", Tag: "Db-------------", Head: sent.GovernedBy(3)},
		{Id: 2, Text: "jsem", Pos: "AUX", Tag: "VB-S---1P-AA---", Head: sent.GovernedBy(3)},
		{Id: 3, Text: "řekla", Pos: "VERB", Tag: "VpQW---XR-AA---", Head: sent.RootGovernor()},
		{Id: 5, Text: "že", Pos: "SCONJ", Tag: "J,-------------", Head: sent.GovernedBy(8)},
		{Id: 6, Text: "Jana", Pos: "PROPN", Tag: "NNFS1-----A----", Head: sent.GovernedBy(8)},
		{Id: 7, Text: "je", Pos: "AUX", Tag: "VB-S---3P-AA---", Head: sent.GovernedBy(8)},
		{Id: 8, Text: "nemocná", Pos: "ADJ", Tag: "AAFS1----1A----", Head: sent.GovernedBy(3)},
	})
}

func TestSegmentSUD(t *testing.T) {
	got := Segment(sudTree())
	want := []Clause{
		{Anchor: 2, Ids: []int{1, 2, 3}},
		{Anchor: 5, Ids: []int{5, 6, 7, 8}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment() = %v, want %v", got, want)
	}
}

func TestSegmentUD(t *testing.T) {
	got := Segment(udTree())
	want := []Clause{
		{Anchor: 2, Ids: []int{2}},
		{Anchor: 3, Ids: []int{1, 3, 5, 6, 8}},
		{Anchor: 7, Ids: []int{7}},
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Segment() = %v, want %v", got, want)
	}
}

func TestSegmentNoAnchor(t *testing.T) {
	tree := sent.MustTree([]sent.Token{
		{Id: 1, Text: "Do", Pos: "ADP", Tag: "RR--2----------", Head: sent.GovernedBy(2)},
		{Id: 2, Text: "domu", Pos: "NOUN", Tag: "NNIS2-----A----", Head: sent.RootGovernor()},
	})

	if got := Segment(tree); len(got) != 0 {
		t.Fatalf("expected no clauses, got %v", got)
	}
}

func TestIsFiniteVerb(t *testing.T) {
	tests := []struct {
		name   string
		tokens []sent.Token
		id     int
		want   bool
	}{
		{
			name:   "VB root",
			tokens: []sent.Token{{Id: 1, Tag: "VB-S---3P-AA---", Head: sent.RootGovernor()}},
			id:     1,
			want:   true,
		},
		{
			name:   "VB unattached",
			tokens: []sent.Token{{Id: 1, Tag: "VB-S---3P-AA---"}},
			id:     1,
			want:   true,
		},
		{
			name: "VB under sconj",
			tokens: []sent.Token{
				{Id: 1, Pos: "SCONJ", Tag: "J,-------------", Head: sent.RootGovernor()},
				{Id: 2, Tag: "VB-S---3P-AA---", Head: sent.GovernedBy(1)},
			},
			id:   2,
			want: true,
		},
		{
			name:   "conditional",
			tokens: []sent.Token{{Id: 1, Tag: "Vc-X---3-------", Head: sent.RootGovernor()}},
			id:     1,
			want:   true,
		},
		{
			name:   "imperative",
			tokens: []sent.Token{{Id: 1, Tag: "Vi-S---2--A----", Head: sent.RootGovernor()}},
			id:     1,
			want:   true,
		},
		{
			name:   "passive",
			tokens: []sent.Token{{Id: 1, Tag: "VsQW---XX-AP---", Head: sent.RootGovernor()}},
			id:     1,
			want:   true,
		},
		{
			name:   "participle root",
			tokens: []sent.Token{{Id: 1, Tag: "VpYS---XR-AA---", Head: sent.RootGovernor()}},
			id:     1,
			want:   true,
		},
		{
			name: "participle under aux",
			tokens: []sent.Token{
				{Id: 1, Pos: "AUX", Tag: "VB-S---1P-AA---", Head: sent.RootGovernor()},
				{Id: 2, Pos: "VERB", Tag: "VpQW---XR-AA---", Head: sent.GovernedBy(1)},
			},
			id:   2,
			want: false,
		},
		{
			name: "participle under noun",
			tokens: []sent.Token{
				{Id: 1, Pos: "NOUN", Tag: "NNFS1-----A----", Head: sent.RootGovernor()},
				{Id: 2, Pos: "VERB", Tag: "VpQW---XR-AA---", Head: sent.GovernedBy(1)},
			},
			id:   2,
			want: true,
		},
		{
			name: "aux with participle child",
			tokens: []sent.Token{
				{Id: 1, Pos: "AUX", Tag: "VpYS---XR-AA---", Head: sent.GovernedBy(2)},
				{Id: 2, Pos: "AUX", Tag: "Vf--------A----", Head: sent.RootGovernor()},
				{Id: 3, Pos: "VERB", Tag: "VpYS---XR-AA---", Head: sent.GovernedBy(2)},
			},
			id:   2,
			want: true,
		},
		{
			name: "aux without participle child",
			tokens: []sent.Token{
				{Id: 1, Pos: "AUX", Tag: "Vf--------A----", Head: sent.RootGovernor()},
				{Id: 2, Pos: "NOUN", Tag: "NNFS1-----A----", Head: sent.GovernedBy(1)},
			},
			id:   1,
			want: false,
		},
		{
			name:   "infinitive",
			tokens: []sent.Token{{Id: 1, Pos: "VERB", Tag: "Vf--------A----", Head: sent.RootGovernor()}},
			id:     1,
			want:   false,
		},
		{
			name:   "short tag",
			tokens: []sent.Token{{Id: 1, Pos: "X", Tag: "V", Head: sent.RootGovernor()}},
			id:     1,
			want:   false,
		},
		{
			name:   "unknown id",
			tokens: []sent.Token{{Id: 1, Tag: "VB-S---3P-AA---", Head: sent.RootGovernor()}},
			id:     9,
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := sent.MustTree(tt.tokens)
			if got := IsFiniteVerb(tree, tt.id); got != tt.want {
				t.Errorf("IsFiniteVerb(%d) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestIsAnchor(t *testing.T) {
	tree := sudTree()
	want := map[int]bool{1: false, 2: true, 3: false, 5: true, 6: false, 7: false, 8: false}

	for id, w := range want {
		if got := IsAnchor(tree, id); got != w {
			t.Errorf("IsAnchor(%d) = %v, want %v", id, got, w)
		}
	}
}

func TestIsAnchorAux(t *testing.T) {
	with := sent.MustTree([]sent.Token{
		{Id: 1, Pos: "AUX", Tag: "Vf--------A----", Head: sent.RootGovernor()},
		{Id: 2, Pos: "VERB", Tag: "VpYS---XR-AA---", Head: sent.GovernedBy(1)},
	})
	if !IsAnchor(with, 1) {
		t.Errorf("aux governing a participle must be an anchor")
	}

	without := sent.MustTree([]sent.Token{
		{Id: 1, Pos: "AUX", Tag: "Vf--------A----", Head: sent.RootGovernor()},
		{Id: 2, Pos: "VERB", Tag: "Vf--------A----", Head: sent.GovernedBy(1)},
	})
	if IsAnchor(without, 1) {
		t.Errorf("aux without participle must not be an anchor")
	}
}

func TestIsAnchorSconjWithoutVerb(t *testing.T) {
	tree := sent.MustTree([]sent.Token{
		{Id: 1, Pos: "SCONJ", Tag: "J,-------------", Head: sent.GovernedBy(2)},
		{Id: 2, Pos: "NOUN", Tag: "NNFS1-----A----", Head: sent.RootGovernor()},
	})
	if IsAnchor(tree, 1) {
		t.Errorf("sconj without finite verb child must not be an anchor")
	}
}

func TestBoundaryStopsAtNestedAnchor(t *testing.T) {
	a := Analyze(sudTree())

	c := a.Boundary(2)
	for _, id := range c.Ids {
		if id == 5 || id == 7 {
			t.Fatalf("matrix clause absorbed nested clause token %d: %v", id, c.Ids)
		}
	}
}

func TestIsComplete(t *testing.T) {
	if !IsComplete(sent.MustTree(nil)) {
		t.Errorf("empty tree must be complete")
	}
	if !IsComplete(sudTree()) {
		t.Errorf("expected complete tree")
	}

	broken := sent.MustTree([]sent.Token{
		{Id: 1, Head: sent.RootGovernor()},
		{Id: 2, Head: sent.UnattachedGovernor()},
	})
	if IsComplete(broken) {
		t.Errorf("tree with unattached token must be incomplete")
	}
}

func TestVerify(t *testing.T) {
	if err := Verify(Segment(sudTree())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Verify([]Clause{{Anchor: 1, Ids: []int{1, 2}}, {Anchor: 3, Ids: []int{2, 3}}})
	if !errors.Is(err, ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
}

func TestBoundaryCycle(t *testing.T) {
	tree := sent.MustTree([]sent.Token{
		{Id: 1, Pos: "VERB", Tag: "VB-S---3P-AA---", Head: sent.RootGovernor()},
		{Id: 2, Pos: "NOUN", Head: sent.GovernedBy(3)},
		{Id: 3, Pos: "NOUN", Head: sent.GovernedBy(2)},
	})

	c := Analyze(tree).Boundary(1)
	if !reflect.DeepEqual(c.Ids, []int{1}) {
		t.Fatalf("unexpected clause %v", c.Ids)
	}
}

var randomPos = []struct{ pos, tag string }{
	{"VERB", "VB-S---3P-AA---"},
	{"VERB", "VpYS---XR-AA---"},
	{"AUX", "VB-S---3P-AA---"},
	{"AUX", "Vf--------A----"},
	{"SCONJ", "J,-------------"},
	{"NOUN", "NNFS1-----A----"},
	{"ADJ", "AAFS1----1A----"},
	{"ADV", "Db-------------"},
}

// randomTree returns a well formed tree: every token but the root is governed
// by a token with a smaller index in a random permutation.
func randomTree(r *rand.Rand, n int) *sent.Tree {
	order := r.Perm(n)
	heads := make([]sent.Governor, n)
	heads[order[0]] = sent.RootGovernor()
	for i := 1; i < n; i++ {
		heads[order[i]] = sent.GovernedBy(order[r.Intn(i)] + 1)
	}

	tokens := make([]sent.Token, n)
	for i := range tokens {
		p := randomPos[r.Intn(len(randomPos))]
		tokens[i] = sent.Token{Id: i + 1, Pos: p.pos, Tag: p.tag, Head: heads[i]}
	}
	return sent.MustTree(tokens)
}

func isDescendant(t *sent.Tree, id, anchor int) bool {
	for steps := 0; steps <= t.Len(); steps++ {
		if id == anchor {
			return true
		}
		gov, ok := t.Governor(id).Id()
		if !ok {
			return false
		}
		id = gov
	}
	return false
}

func TestClauseInvariantsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		tree := randomTree(r, 1+r.Intn(15))
		clauses := Segment(tree)

		if err := Verify(clauses); err != nil {
			t.Fatalf("tree %d: %v", i, err)
		}

		for _, c := range clauses {
			if len(c.Ids) == 0 {
				t.Fatalf("tree %d: empty clause", i)
			}
			hasAnchor := false
			for j, id := range c.Ids {
				if j > 0 && c.Ids[j-1] >= id {
					t.Fatalf("tree %d: clause not strictly ascending %v", i, c.Ids)
				}
				if id == c.Anchor {
					hasAnchor = true
				}
				if !isDescendant(tree, id, c.Anchor) {
					t.Fatalf("tree %d: %d is not a descendant of anchor %d", i, id, c.Anchor)
				}
			}
			if !hasAnchor {
				t.Fatalf("tree %d: anchor %d missing from %v", i, c.Anchor, c.Ids)
			}
		}
	}
}
