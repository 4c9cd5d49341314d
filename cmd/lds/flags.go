package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/lds/batch"
	"github.com/revelaction/lds/lds"
	"github.com/revelaction/lds/render"
)

const (
	docPathEnv = "LDS_DOC_PATH"
	dbPathEnv  = "LDS_DB_PATH"
)

var digitRegex = regexp.MustCompile(`^\d+$`)

func docPathFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "doc-path",
		Aliases: []string{"d"},
		Usage:   "Path to a folder of CoNLL-U files or to a SQLite file",
		EnvVars: []string{docPathEnv},
	}
}

func segmentationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "strategy",
			Aliases: []string{"m"},
			Usage:   "LDS strategy: 1 (syntactic) or 2 (adjacent)",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Usage:   "Number of sentences segmented concurrently (0: number of CPUs)",
		},
		&cli.BoolFlag{
			Name:  "keep-punct",
			Usage: "Do not strip punctuation before segmenting",
		},
		&cli.BoolFlag{
			Name:  "global-clause-ids",
			Usage: "Number clauses across the whole run instead of per sentence",
		},
	}
}

// docPath returns the doc path from the flags or the configuration.
func (e *env) docPath(c *cli.Context) (string, error) {
	path := e.cfg.DocPath
	if c.IsSet("doc-path") {
		path = c.String("doc-path")
	}
	if path == "" {
		return "", errors.New("doc path must be specified via -d, " + docPathEnv + " or the configuration file")
	}
	return path, nil
}

// batchOptions merges the segmentation flags over the configuration.
func (e *env) batchOptions(c *cli.Context) (batch.Options, error) {
	strategyArg := e.cfg.Strategy
	if c.IsSet("strategy") {
		strategyArg = c.String("strategy")
	}
	strategy, err := lds.ParseStrategy(strategyArg)
	if err != nil {
		return batch.Options{}, err
	}

	opts := batch.Options{
		Strategy:        strategy,
		Workers:         e.cfg.Workers,
		KeepPunct:       e.cfg.KeepPunct,
		GlobalClauseIds: e.cfg.GlobalClauseIds,
	}

	if c.IsSet("workers") {
		opts.Workers = c.Int("workers")
	}
	if opts.Workers < 0 {
		return batch.Options{}, fmt.Errorf("workers must not be negative: %d", opts.Workers)
	}
	if c.IsSet("keep-punct") {
		opts.KeepPunct = c.Bool("keep-punct")
	}
	if c.IsSet("global-clause-ids") {
		opts.GlobalClauseIds = c.Bool("global-clause-ids")
	}

	return opts, nil
}

func (e *env) format(c *cli.Context) (string, error) {
	format := e.cfg.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	for _, f := range render.SupportedFormats() {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("allowed values for format are %v", render.SupportedFormats())
}

// isFile reports whether arg names an existing regular file. Otherwise arg
// must be a doc id.
func isFile(arg string) (bool, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return true, nil
	}
	if !digitRegex.MatchString(arg) {
		return false, fmt.Errorf("file not found and not a valid doc id: %s", arg)
	}
	return false, nil
}

func atoi(name, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	return n, nil
}
