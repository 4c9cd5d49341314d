package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/conllu"
	"github.com/revelaction/lds/render"
	sent "github.com/revelaction/lds/sentence"
)

func showCmd(e *env) *cli.Command {
	flags := []cli.Flag{
		docPathFlag(),
		&cli.BoolFlag{
			Name:    "tokens",
			Aliases: []string{"t"},
			Usage:   "Also print the annotation of every token",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Do not color the output",
		},
	}

	return &cli.Command{
		Name:      "show",
		Usage:     "Show the clauses and segments of one sentence",
		ArgsUsage: "<file.conllu|doc id> <sentence index>",
		Flags:     append(flags, segmentationFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("show needs a CoNLL-U file or doc id and a sentence index")
			}
			opts, err := e.batchOptions(c)
			if err != nil {
				return err
			}
			sentId, err := atoi("sentence index", c.Args().Get(1))
			if err != nil {
				return err
			}

			sentences, err := e.sentences(c, c.Args().Get(0))
			if err != nil {
				return err
			}

			if sentId < 0 || sentId >= len(sentences) {
				return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(sentences)-1)
			}

			return showCommand(sentences[sentId], sentId, opts, c.Bool("tokens"), !c.Bool("no-color"), e.ui)
		},
	}
}

// sentences returns the sentences of arg, a CoNLL-U file or the id of a doc
// in the doc path.
func (e *env) sentences(c *cli.Context, arg string) ([]sent.Sentence, error) {
	file, err := isFile(arg)
	if err != nil {
		return nil, err
	}
	if file {
		return conllu.ReadFile(arg)
	}

	docId, err := atoi("doc id", arg)
	if err != nil {
		return nil, err
	}
	docPath, err := e.docPath(c)
	if err != nil {
		return nil, err
	}

	p := &Pool{}
	defer p.Close()

	repo, err := NewDocRepository(p, docPath)
	if err != nil {
		return nil, err
	}
	doc, err := repo.Read(docId)
	if err != nil {
		return nil, err
	}
	return doc.Sentences, nil
}

func showCommand(s sent.Sentence, sentId int, opts batch.Options, tokens, color bool, ui UI) error {
	res := batch.Process(s, opts)
	res.SentenceId = sentId

	r := render.NewRenderer(ui.Out)
	r.HasColor = color
	r.Result(res, fmt.Sprintf("✍  %d ", sentId))

	if tokens && res.Tree != nil {
		fmt.Fprintln(ui.Out)
		r.Tokens(res.Tree)
	}

	return nil
}
