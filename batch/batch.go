// Package batch runs the clause and LDS segmentation over a corpus and
// produces the rows of the segmentation report.
package batch

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/lds/clause"
	"github.com/revelaction/lds/lds"
	sent "github.com/revelaction/lds/sentence"
)

// Status tells whether a sentence was segmented or why it was skipped.
type Status int

const (
	Segmented Status = iota
	// Incomplete trees have at least one unattached token.
	Incomplete
	// Invalid sentences could not be turned into a tree.
	Invalid
	// Overlapping sentences produced clauses sharing tokens.
	Overlapping
)

func (s Status) String() string {
	switch s {
	case Segmented:
		return "segmented"
	case Incomplete:
		return "incomplete"
	case Invalid:
		return "invalid"
	case Overlapping:
		return "overlapping"
	}
	return "unknown"
}

type Options struct {
	Strategy lds.Strategy

	// Workers is the number of sentences segmented concurrently. Zero means
	// runtime.NumCPU().
	Workers int

	// GlobalClauseIds numbers clauses across the whole run instead of per
	// sentence.
	GlobalClauseIds bool

	// KeepPunct disables punctuation stripping.
	KeepPunct bool
}

// Result is the segmentation of one sentence.
type Result struct {
	// SentenceId is the position of the sentence in the run, counting
	// skipped sentences.
	SentenceId int

	Sentence sent.Sentence
	Tree     *sent.Tree
	Status   Status
	Err      error

	Clauses []clause.Clause

	// Segments holds the segments of each clause, same order as Clauses.
	Segments [][]lds.Segment
}

// Driver segments consecutive batches of sentences, keeping the report
// counters between calls. A Driver is not safe for concurrent use.
type Driver struct {
	opts Options
	log  *zap.Logger

	nextSentence int
	nextClause   int
	nextSegment  int
}

func NewDriver(opts Options, log *zap.Logger) *Driver {
	if opts.Strategy == 0 {
		opts.Strategy = lds.Syntactic
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Driver{opts: opts, log: log}
}

func (d *Driver) Options() Options {
	return d.opts
}

// Segment segments the sentences concurrently. Results are in input order
// and sentence ids continue from the previous call.
func (d *Driver) Segment(ctx context.Context, sentences []sent.Sentence) ([]Result, error) {
	results := make([]Result, len(sentences))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Workers)

	for i := range sentences {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Process(sentences[i], d.opts)
			results[i].SentenceId = d.nextSentence + i
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.nextSentence += len(sentences)

	for _, res := range results {
		d.logResult(res)
	}

	return results, nil
}

func (d *Driver) logResult(res Result) {
	switch res.Status {
	case Incomplete:
		d.log.Debug("skip incomplete tree", zap.Int("sentence", res.SentenceId), zap.String("sent_id", res.Sentence.Meta))
	case Invalid:
		d.log.Warn("skip invalid sentence", zap.Int("sentence", res.SentenceId), zap.String("sent_id", res.Sentence.Meta), zap.Error(res.Err))
	case Overlapping:
		d.log.Error("skip sentence with overlapping clauses", zap.Int("sentence", res.SentenceId), zap.String("sent_id", res.Sentence.Meta), zap.Error(res.Err))
	case Segmented:
		if len(res.Clauses) == 0 {
			d.log.Info("sentence without clauses", zap.Int("sentence", res.SentenceId), zap.String("text", res.Tree.Sentence()))
		}
	}
}

// Process segments a single sentence.
func Process(s sent.Sentence, opts Options) Result {
	res := Result{Sentence: s}

	tokens := s.Tokens
	if !opts.KeepPunct {
		tokens = sent.Unpunct(tokens)
	}

	tree, err := sent.NewTree(tokens)
	if err != nil {
		res.Status = Invalid
		res.Err = err
		return res
	}
	res.Tree = tree

	if !clause.IsComplete(tree) {
		res.Status = Incomplete
		return res
	}

	clauses := clause.Segment(tree)
	if err := clause.Verify(clauses); err != nil {
		res.Status = Overlapping
		res.Err = err
		return res
	}

	strategy := opts.Strategy
	if strategy == 0 {
		strategy = lds.Syntactic
	}

	res.Clauses = clauses
	res.Segments = make([][]lds.Segment, len(clauses))
	for i, c := range clauses {
		segments, err := lds.Split(tree, c.Ids, strategy)
		if err != nil {
			res.Status = Invalid
			res.Err = err
			return res
		}
		res.Segments[i] = segments
	}

	return res
}
