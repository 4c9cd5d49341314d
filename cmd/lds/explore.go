package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/lds/explore"
	"github.com/revelaction/lds/render"
)

func exploreCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "explore",
		Usage: "Browse the segmentation of the corpus interactively",
		Description: "Type '<doc id> <sentence index>' to show a sentence, 'tokens <doc> <sentence>'\n" +
			"for its annotation, 'find <doc> <word>' to search. Ctrl+F cycles the shown\n" +
			"strategies, Ctrl+X toggles punctuation stripping.",
		Flags: append([]cli.Flag{docPathFlag()}, segmentationFlags()...),
		Action: func(c *cli.Context) error {
			docPath, err := e.docPath(c)
			if err != nil {
				return err
			}
			opts, err := e.batchOptions(c)
			if err != nil {
				return err
			}

			p := &Pool{}
			defer p.Close()

			repo, err := NewDocRepository(p, docPath)
			if err != nil {
				return err
			}

			return explore.NewHandler(repo, render.NewRenderer(e.ui.Out), opts).Run()
		},
	}
}
