package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionCmd(e *env) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the version",
		Action: func(c *cli.Context) error {
			return versionCommand(e.ui)
		},
	}
}

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "lds version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
