package main

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/lds/storage/filesystem"
	"github.com/revelaction/lds/storage/sqlite/zombiezen"
)

func importCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Import a folder of CoNLL-U files into a SQLite file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Source folder", Required: true},
			&cli.StringFlag{Name: "to", Usage: "Target SQLite file", Required: true},
		},
		Action: func(c *cli.Context) error {
			return importDocCommand(c.String("from"), c.String("to"), e.ui)
		},
	}
}

func importDocCommand(from, to string, ui UI) error {
	src, err := filesystem.NewDocStore(from)
	if err != nil {
		return err
	}

	p := &Pool{}
	defer p.Close()

	pool, err := p.Open(to, zombiezen.DocsSchema)
	if err != nil {
		return fmt.Errorf("failed to create docs table: %w", err)
	}
	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", from)
	docs, err := src.List()
	if err != nil {
		return err
	}

	progress := uiprogress.New()
	progress.SetOut(ui.Err)
	progress.Start()
	bar := progress.AddBar(len(docs))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, docMeta := range docs {
		doc, err := src.Read(docMeta.Id)
		if err != nil {
			progress.Stop()
			return fmt.Errorf("failed to read doc %s: %w", docMeta.Title, err)
		}

		if err := dst.Write(doc); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		bar.Incr()
	}
	progress.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
	return nil
}
