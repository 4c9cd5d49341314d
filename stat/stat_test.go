package stat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/lds"
	sent "github.com/revelaction/lds/sentence"
)

func TestAggregate(t *testing.T) {
	segmented := batch.Process(sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Text: "Přišel", Pos: "VERB", Tag: "VpYS---XR-AA---", Head: sent.RootGovernor()},
		{Id: 2, Text: ",", Pos: "PUNCT", Tag: "Z:-------------", Head: sent.GovernedBy(1)},
		{Id: 3, Text: "domů", Pos: "ADV", Tag: "Db-------------", Head: sent.GovernedBy(1)},
	}}, batch.Options{})

	noClause := batch.Process(sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Text: "Do", Pos: "ADP", Tag: "RR--2----------", Head: sent.GovernedBy(2)},
		{Id: 2, Text: "domu", Pos: "NOUN", Tag: "NNIS2-----A----", Head: sent.RootGovernor()},
	}}, batch.Options{})

	incomplete := batch.Process(sent.Sentence{Tokens: []sent.Token{
		{Id: 1, Text: "Hm", Pos: "INTJ"},
	}}, batch.Options{})

	h := NewHandler()
	h.Aggregate([]batch.Result{segmented, noClause, incomplete})
	stats := h.Get()

	assert.Equal(t, 3, stats.NumSentences)
	assert.Equal(t, 1, stats.NumIncomplete)
	assert.Equal(t, 2, stats.NumSegmented())
	assert.Equal(t, 1, stats.NumNoClause)
	assert.Equal(t, 1, stats.NumClauses)
	assert.Equal(t, 4, stats.NumTokens)
	assert.Equal(t, 2, stats.NumClauseTokens)
	assert.InDelta(t, 0.5, stats.MeanClauses(), 1e-9)

	syn := stats.Segments[lds.Syntactic]
	assert.Equal(t, 1, syn.NumSegments)
	assert.InDelta(t, 2.0, syn.MeanLength(), 1e-9)
	assert.Equal(t, map[int]int{2: 1}, syn.LengthDis)

	adj := stats.Segments[lds.Adjacent]
	assert.Equal(t, 2, adj.NumSegments)
	assert.Equal(t, []int{1}, adj.Lengths())
}

func TestEmptyStats(t *testing.T) {
	stats := NewHandler().Get()
	assert.Zero(t, stats.MeanClauses())
	assert.Zero(t, stats.Segments[lds.Syntactic].MeanLength())
}
