package stat

import (
	"sort"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/lds"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences   int
	NumIncomplete  int
	NumInvalid     int
	NumOverlapping int

	// NumNoClause is the number of segmented sentences without any clause
	NumNoClause int

	NumClauses int

	// NumTokens counts the tokens of the segmented sentences
	NumTokens int

	// NumClauseTokens counts the tokens belonging to a clause
	NumClauseTokens int

	Segments map[lds.Strategy]*SegmentStats
}

type SegmentStats struct {
	NumSegments int
	NumTokens   int

	// LengthDis maps a segment length (in tokens) to its count
	LengthDis map[int]int
}

// MeanLength returns the mean number of tokens per segment.
func (s *SegmentStats) MeanLength() float64 {
	if s.NumSegments == 0 {
		return 0
	}
	return float64(s.NumTokens) / float64(s.NumSegments)
}

// Lengths returns the segment lengths found, ascending.
func (s *SegmentStats) Lengths() []int {
	lengths := make([]int, 0, len(s.LengthDis))
	for l := range s.LengthDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	return lengths
}

// NumSegmented returns the number of sentences that were segmented.
func (s Stats) NumSegmented() int {
	return s.NumSentences - s.NumIncomplete - s.NumInvalid - s.NumOverlapping
}

// MeanClauses returns the mean number of clauses per segmented sentence.
func (s Stats) MeanClauses() float64 {
	n := s.NumSegmented()
	if n == 0 {
		return 0
	}
	return float64(s.NumClauses) / float64(n)
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{Segments: map[lds.Strategy]*SegmentStats{}}
	for _, s := range lds.Strategies() {
		stats.Segments[s] = &SegmentStats{LengthDis: map[int]int{}}
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the results to the statistics. Segments are counted for
// every strategy, whatever strategy produced the results.
func (h *Handler) Aggregate(results []batch.Result) {
	for _, res := range results {
		h.stats.NumSentences++

		switch res.Status {
		case batch.Incomplete:
			h.stats.NumIncomplete++
			continue
		case batch.Invalid:
			h.stats.NumInvalid++
			continue
		case batch.Overlapping:
			h.stats.NumOverlapping++
			continue
		}

		h.stats.NumTokens += res.Tree.Len()

		if len(res.Clauses) == 0 {
			h.stats.NumNoClause++
			continue
		}

		h.stats.NumClauses += len(res.Clauses)

		for _, c := range res.Clauses {
			h.stats.NumClauseTokens += len(c.Ids)

			for strategy, ss := range h.stats.Segments {
				segments, err := lds.Split(res.Tree, c.Ids, strategy)
				if err != nil {
					continue
				}
				for _, seg := range segments {
					ss.NumSegments++
					ss.NumTokens += len(seg)
					ss.LengthDis[len(seg)]++
				}
			}
		}
	}
}
