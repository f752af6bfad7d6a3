//nolint:wrapcheck
package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/datagrade/datagrade"
	"github.com/datagrade/datagrade/internal/ingest"
)

var errAnalyzeArgs = errors.New("expected exactly one argument: file path")

func analyzeCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Analyze a tabular file for data quality issues",
		ArgsUsage: "<file.csv | file.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "dimensions",
				Aliases: []string{"C"},
				Usage:   "Comma-separated dimensions or preset: all, completeness, uniqueness, validity, consistency, accuracy, timeliness",
				Value:   "all",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"D"},
				Usage:   "Include all raw scorer data in output",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errAnalyzeArgs, cmd.NArg())
			}

			filePath := cmd.Args().First()

			dims, err := parseDimensions(cmd.String("dimensions"))
			if err != nil {
				return err
			}

			ds, err := ingest.Load(filePath)
			if err != nil {
				return fmt.Errorf("loading dataset: %w", err)
			}

			opts := datagrade.DefaultOptions()
			opts.Dimensions = dims

			report, err := datagrade.Analyze(ds, opts)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			return outputReport(filePath, report, cmd.String("format"), cmd.Bool("debug"))
		},
	}
}

//nolint:gochecknoglobals // configuration data, effectively const
var dimensionNames = map[string]datagrade.Dimension{
	"completeness": datagrade.DimCompleteness,
	"uniqueness":   datagrade.DimUniqueness,
	"validity":     datagrade.DimValidity,
	"consistency":  datagrade.DimConsistency,
	"accuracy":     datagrade.DimAccuracy,
	"timeliness":   datagrade.DimTimeliness,
}

func parseDimensions(list string) (datagrade.Dimension, error) {
	var dims datagrade.Dimension

	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}

		if name == "all" {
			dims |= datagrade.DimensionsAll

			continue
		}

		dim, ok := dimensionNames[name]
		if !ok {
			return 0, fmt.Errorf("unknown dimension %q (valid: all, completeness, uniqueness, validity, consistency, accuracy, timeliness)", name) //nolint:err113
		}

		dims |= dim
	}

	if dims == 0 {
		dims = datagrade.DimensionsAll
	}

	return dims, nil
}
