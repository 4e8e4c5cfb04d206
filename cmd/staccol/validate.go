package main

import (
	"context"
	"fmt"
	"os"

	"github.com/robert-malhotra/go-stac-collection/pkg/stac"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

var (
	schemaFlag = &cli.BoolFlag{
		Name:  "schema",
		Usage: "Also check each document against the embedded JSON Schema",
	}
	strictBandsFlag = &cli.BoolFlag{
		Name:  "strict-bands",
		Usage: "Require eo:bands on every item asset when the eo extension is declared",
	}
)

func newValidateCommand() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate one or more STAC Collection documents",
		ArgsUsage: "FILE...",
		Flags:     []cli.Flag{schemaFlag, strictBandsFlag},
		Action:    validateAction,
	}
}

func validateAction(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.String(logLevelFlag.Name))

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("expected at least 1 argument: FILE")
	}

	validator := &stac.Validator{}
	if cmd.Bool(strictBandsFlag.Name) {
		validator.BandStrictness = stac.BandsRequired
	}

	failed := 0
	for _, file := range files {
		if err := validateFile(cmd, validator, file); err != nil {
			log.Error().Err(err).Str("file", file).Msg("invalid collection")
			failed++
			continue
		}
		log.Info().Str("file", file).Msg("valid collection")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed validation", failed, len(files))
	}
	return nil
}

func validateFile(cmd *cli.Command, validator *stac.Validator, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if cmd.Bool(schemaFlag.Name) {
		if err := stac.ValidateSchema(data); err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
	}

	col, err := stac.Parse(data)
	if err != nil {
		return err
	}

	violations := validator.Validate(col)
	if len(violations) == 0 {
		return nil
	}

	if !cmd.Bool(quietFlag.Name) {
		for _, v := range violations {
			log.Warn().
				Str("file", file).
				Str("path", v.Path).
				Str("code", string(v.Code)).
				Msg(v.Message)
		}
	}
	return fmt.Errorf("%d violation(s)", len(violations))
}
