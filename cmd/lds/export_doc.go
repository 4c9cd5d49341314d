package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/lds/storage/filesystem"
	"github.com/revelaction/lds/storage/sqlite/zombiezen"
)

func exportCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Export the docs of a SQLite file to a folder of CoNLL-U files",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "Source SQLite file", Required: true},
			&cli.StringFlag{Name: "to", Usage: "Target folder", Required: true},
		},
		Action: func(c *cli.Context) error {
			return exportDocCommand(c.String("from"), c.String("to"), e.ui)
		},
	}
}

func exportDocCommand(from, to string, ui UI) error {
	if _, err := os.Stat(from); err != nil {
		return fmt.Errorf("repository not found: %s", from)
	}

	p := &Pool{}
	defer p.Close()

	pool, err := p.Open(from, zombiezen.DocsSchema)
	if err != nil {
		return err
	}
	src := zombiezen.NewDocStore(pool)

	if err := os.MkdirAll(to, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}
	dst, err := filesystem.NewDocStore(to)
	if err != nil {
		return err
	}

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
			return fmt.Errorf("failed to read doc %s (id %d): %w", docMeta.Title, docMeta.Id, err)
		}

		if err := dst.Write(doc); err != nil {
			progress.Stop()
			return fmt.Errorf("failed to write doc %s: %w", docMeta.Title, err)
		}
		count++
		bar.Incr()
	}
	progress.Stop()

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
	return nil
}
