package main

import (
	"context"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-stac-collection/pkg/stac"
	"github.com/urfave/cli/v3"
)

var writeFlag = &cli.BoolFlag{
	Name:    "write",
	Aliases: []string{"w"},
	Usage:   "Rewrite FILE in place instead of printing to stdout",
}

func newFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Rewrite a STAC Collection document in RFC 8785 canonical form",
		ArgsUsage: "FILE",
		Flags:     []cli.Flag{writeFlag},
		Action:    fmtAction,
	}
}

func fmtAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected 1 argument: FILE")
	}
	file := cmd.Args().First()

	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	col, err := stac.Parse(data)
	if err != nil {
		return err
	}

	canon, err := stac.CanonicalJSON(col)
	if err != nil {
		return err
	}

	if cmd.Bool(writeFlag.Name) {
		return os.WriteFile(file, append(canon, '\n'), 0o644)
	}

	_, err = fmt.Fprintln(os.Stdout, string(canon))
	return err
}
