package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/revelaction/lds/conf"
)

var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "lds: %v\n", err)
}

// env is the state shared by the commands, set up before any of them runs.
type env struct {
	ui  UI
	cfg conf.Config
	log *zap.Logger
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui, log: zap.NewNop()}

	return &cli.App{
		Name:                 "lds",
		Usage:                "segment dependency trees into clauses and linear dependency segments",
		Version:              fmt.Sprintf("%s (commit: %s)", BuildTag, BuildCommit),
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file (default: ./" + conf.DefaultPath + " if present)",
				EnvVars: []string{"LDS_CONFIG"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug messages",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := conf.Load(c.String("config"))
			if err != nil {
				return err
			}
			e.cfg = cfg

			log, err := newLogger(ui.Err, c.Bool("verbose"))
			if err != nil {
				return err
			}
			e.log = log
			return nil
		},
		After: func(c *cli.Context) error {
			_ = e.log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			segmentCmd(e),
			showCmd(e),
			statCmd(e),
			importCmd(e),
			exportCmd(e),
			exploreCmd(e),
			versionCmd(e),
		},
	}
}

// newLogger returns a console logger writing to w.
func newLogger(w io.Writer, verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core), nil
}
