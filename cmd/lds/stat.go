package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/lds"
	"github.com/revelaction/lds/stat"
)

func statCmd(e *env) *cli.Command {
	flags := []cli.Flag{
		docPathFlag(),
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Do not show the progress bar",
		},
		&cli.BoolFlag{
			Name:  "lengths",
			Usage: "Print the distribution of segment lengths",
		},
	}

	return &cli.Command{
		Name:  "stat",
		Usage: "Print clause and segment statistics of the corpus",
		Flags: append(flags, segmentationFlags()...),
		Action: func(c *cli.Context) error {
			docPath, err := e.docPath(c)
			if err != nil {
				return err
			}
			opts, err := e.batchOptions(c)
			if err != nil {
				return err
			}
			return statCommand(c, e, docPath, opts, c.Bool("quiet"), c.Bool("lengths"))
		},
	}
}

func statCommand(c *cli.Context, e *env, docPath string, opts batch.Options, quiet, lengths bool) error {
	p := &Pool{}
	defer p.Close()

	repo, err := NewDocRepository(p, docPath)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	driver := batch.NewDriver(opts, e.log)
	err = walkDocs(c, repo, driver, e.ui, quiet, func(results []batch.Result) error {
		hdl.Aggregate(results)
		return nil
	})
	if err != nil {
		return err
	}

	printStats(e.ui, hdl.Get(), lengths)
	return nil
}

func printStats(ui UI, stats stat.Stats, lengths bool) {
	fmt.Fprintf(ui.Out, "Num sentences %d, segmented %d, incomplete %d, invalid %d, overlapping %d\n",
		stats.NumSentences, stats.NumSegmented(), stats.NumIncomplete, stats.NumInvalid, stats.NumOverlapping)
	fmt.Fprintf(ui.Out, "Num clauses %d, clauses per sentence %.2f, sentences without clause %d\n",
		stats.NumClauses, stats.MeanClauses(), stats.NumNoClause)
	fmt.Fprintf(ui.Out, "Num tokens %d, in clauses %d\n", stats.NumTokens, stats.NumClauseTokens)

	for _, s := range lds.Strategies() {
		ss := stats.Segments[s]
		fmt.Fprintf(ui.Out, "%s: num segments %d, tokens per segment %.2f\n", s, ss.NumSegments, ss.MeanLength())
		if !lengths {
			continue
		}
		for _, l := range ss.Lengths() {
			fmt.Fprintf(ui.Out, "   %3d %d\n", l, ss.LengthDis[l])
		}
	}
}
