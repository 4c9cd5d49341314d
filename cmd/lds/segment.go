package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/render"
	"github.com/revelaction/lds/storage"
)

func segmentCmd(e *env) *cli.Command {
	flags := []cli.Flag{
		docPathFlag(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   fmt.Sprintf("Report format %v", render.SupportedFormats()),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Report file (default: stdout)",
		},
		&cli.StringFlag{
			Name:    "db",
			Usage:   "Also store the report rows in this SQLite file",
			EnvVars: []string{dbPathEnv},
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Do not show the progress bar",
		},
	}

	return &cli.Command{
		Name:  "segment",
		Usage: "Segment every sentence of the corpus and write the report",
		Description: "Writes one sentence row per complete sentence, one clause row per clause and\n" +
			"one segment row per linear dependency segment. Incomplete trees are skipped.",
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
			format, err := e.format(c)
			if err != nil {
				return err
			}

			dbPath := e.cfg.DBPath
			if c.IsSet("db") {
				dbPath = c.String("db")
			}

			return segmentCommand(c, e, docPath, dbPath, c.String("output"), format, opts, c.Bool("quiet"))
		},
	}
}

func segmentCommand(c *cli.Context, e *env, docPath, dbPath, output, format string, opts batch.Options, quiet bool) error {
	docPool := &Pool{}
	defer docPool.Close()

	repo, err := NewDocRepository(docPool, docPath)
	if err != nil {
		return err
	}

	var out io.Writer = e.ui.Out
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create report %s: %w", output, err)
		}
		defer f.Close()
		out = f
	}

	w, err := render.NewRowWriter(format, out)
	if err != nil {
		return err
	}

	var rows []batch.Row
	driver := batch.NewDriver(opts, e.log)
	err = walkDocs(c, repo, driver, e.ui, quiet, func(results []batch.Result) error {
		docRows := driver.Rows(results)
		for _, row := range docRows {
			if err := w.Write(row); err != nil {
				return err
			}
		}
		if dbPath != "" {
			rows = append(rows, docRows...)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if dbPath != "" {
		reportPool := &Pool{}
		defer reportPool.Close()

		store, err := NewReportRepository(reportPool, dbPath)
		if err != nil {
			return err
		}
		run := opts.Strategy.String()
		if err := store.WriteReport(run, rows); err != nil {
			return err
		}
		e.log.Info("stored report", zap.String("db", dbPath), zap.String("run", run), zap.Int("rows", len(rows)))
	}

	return nil
}

// walkDocs reads every doc of repo, segments it with driver and passes the
// results to fn, showing a progress bar on ui.Err.
func walkDocs(c *cli.Context, repo storage.DocReader, driver *batch.Driver, ui UI, quiet bool, fn func([]batch.Result) error) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	var bar *uiprogress.Bar
	if !quiet && len(docs) > 0 {
		progress := uiprogress.New()
		progress.SetOut(ui.Err)
		progress.Start()
		defer progress.Stop()

		bar = progress.AddBar(len(docs))
		bar.AppendCompleted()
		bar.PrependElapsed()
		bar.AppendFunc(func(b *uiprogress.Bar) string {
			if b.Current() == 0 {
				return ""
			}
			return docs[b.Current()-1].Title
		})
	}

	for _, meta := range docs {
		doc, err := repo.Read(meta.Id)
		if err != nil {
			return fmt.Errorf("failed to read doc %s (id %d): %w", meta.Title, meta.Id, err)
		}

		results, err := driver.Segment(c.Context, doc.Sentences)
		if err != nil {
			return err
		}

		if err := fn(results); err != nil {
			return err
		}

		if bar != nil {
			bar.Incr()
		}
	}

	return nil
}
