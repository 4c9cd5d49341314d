package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/clause"
	"github.com/revelaction/lds/lds"
	sent "github.com/revelaction/lds/sentence"
)

var (
	Red       = "\033[1;31m"
	Green     = "\033[1;32m"
	Yellow    = "\033[0;33m"
	Purple    = "\033[1;34m"
	Teal      = "\033[1;36m"
	Gray      = "\033[0;37m"
	Off       = "\033[0m"
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
)

// segmentColors alternate between consecutive segments of a clause
var segmentColors = []string{Green256, Purple, Yellow256, Teal}

const segmentSeparator = " | "

// Renderer prints sentences with their clauses and segments to a terminal.
type Renderer struct {
	Out io.Writer

	HasColor bool

	// Strategies whose segments are shown under every clause
	Strategies []lds.Strategy
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{
		Out:        w,
		HasColor:   true,
		Strategies: lds.Strategies(),
	}
}

// NextStrategy cycles the shown strategies: all, then each one alone.
func (r *Renderer) NextStrategy() {
	all := lds.Strategies()
	if len(r.Strategies) != 1 {
		r.Strategies = all[:1]
		return
	}

	for i, s := range all {
		if s == r.Strategies[0] && i+1 < len(all) {
			r.Strategies = all[i+1 : i+2]
			return
		}
	}
	r.Strategies = all
}

func (r *Renderer) color(s, color string) string {
	if !r.HasColor {
		return s
	}
	return color + s + Off
}

// Sentence prints the sentence, highlighting the clause anchors.
func (r *Renderer) Sentence(tree *sent.Tree, prefix string) {
	fmt.Fprintf(r.Out, "%s%s\n", prefix, r.sentence(tree))
}

func (r *Renderer) sentence(tree *sent.Tree) string {
	a := clause.Analyze(tree)
	words := lo.Map(tree.Tokens(), func(tk sent.Token, _ int) string {
		if a.IsAnchor(tk.Id) {
			return r.color(tk.Text, Red)
		}
		return tk.Text
	})
	return strings.Join(words, " ")
}

// Result prints a segmented sentence: the sentence, then each clause
// followed by its segments for every shown strategy.
func (r *Renderer) Result(res batch.Result, prefix string) {
	if res.Tree == nil {
		fmt.Fprintf(r.Out, "%s%s: %v\n", prefix, r.color(res.Status.String(), Red), res.Err)
		return
	}

	r.Sentence(res.Tree, prefix)

	if res.Status != batch.Segmented {
		msg := res.Status.String()
		if res.Err != nil {
			msg = fmt.Sprintf("%s: %v", msg, res.Err)
		}
		fmt.Fprintf(r.Out, "   %s\n", r.color(msg, Red))
		return
	}

	if len(res.Clauses) == 0 {
		fmt.Fprintf(r.Out, "   %s\n", r.color("no clauses", Gray))
		return
	}

	width := lo.Max(lo.Map(r.Strategies, func(s lds.Strategy, _ int) int { return len(s.String()) }))

	for i, c := range res.Clauses {
		anchor, _ := res.Tree.Token(c.Anchor)
		fmt.Fprintf(r.Out, "   %s %d %s %s\n", r.color("clause", Grey256), i, r.color("["+anchor.Text+"]", Red), res.Tree.Surface(c.Ids))

		for _, s := range r.Strategies {
			segments, err := lds.Split(res.Tree, c.Ids, s)
			if err != nil {
				continue
			}
			fmt.Fprintf(r.Out, "      %-*s %s\n", width+1, s.String()+":", r.segments(res.Tree, segments))
		}
	}
}

func (r *Renderer) segments(tree *sent.Tree, segments []lds.Segment) string {
	parts := lo.Map(segments, func(s lds.Segment, i int) string {
		return r.color(tree.Surface(s), segmentColors[i%len(segmentColors)])
	})
	return strings.Join(parts, segmentSeparator)
}

// Tokens prints one line per token with its annotation and classification.
func (r *Renderer) Tokens(tree *sent.Tree) {
	a := clause.Analyze(tree)
	for _, tk := range tree.Tokens() {
		var flags []string
		if clause.IsFiniteVerb(tree, tk.Id) {
			flags = append(flags, "finite")
		}
		if a.IsAnchor(tk.Id) {
			flags = append(flags, "anchor")
		}
		fmt.Fprintf(r.Out, "%20q %15q %6s %4d %12s %10s %16s %s\n", tk.Text, tk.Lemma, tk.Pos, tk.Id, tk.Head, tk.Dep, tk.Tag, strings.Join(flags, ","))
	}
}
