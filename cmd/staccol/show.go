package main

import (
	"context"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-stac-collection/pkg/stac"
	"github.com/urfave/cli/v3"
)

func newShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a summary of a STAC Collection document",
		ArgsUsage: "FILE",
		Action:    showAction,
	}
}

func showAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected 1 argument: FILE")
	}

	data, err := os.ReadFile(cmd.Args().First())
	if err != nil {
		return err
	}

	col, err := stac.Parse(data)
	if err != nil {
		return err
	}

	printCollection(os.Stdout, col)
	return nil
}
