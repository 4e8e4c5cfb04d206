package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (debug, info, warn, error)",
		Value: "info",
	}
	quietFlag = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Suppress per-violation output",
	}
)

func main() {
	cmd := &cli.Command{
		Name:  "staccol",
		Usage: "Validate and inspect STAC Collection documents",
		Flags: []cli.Flag{logLevelFlag, quietFlag},
		Commands: []*cli.Command{
			newValidateCommand(),
			newShowCommand(),
			newFmtCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
