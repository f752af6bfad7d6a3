//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/datagrade/datagrade"
	"github.com/datagrade/datagrade/internal/ingest"
	"github.com/datagrade/datagrade/internal/output"
)

func readinessCommand() *cli.Command {
	return &cli.Command{
		Name:      "readiness",
		Usage:     "Assess whether a dataset is ready for model training",
		ArgsUsage: "<file.csv | file.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: console, json, markdown",
				Value:   "console",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errAnalyzeArgs, cmd.NArg())
			}

			filePath := cmd.Args().First()

			ds, err := ingest.Load(filePath)
			if err != nil {
				return fmt.Errorf("loading dataset: %w", err)
			}

			result, err := datagrade.AssessMLReadiness(ds, datagrade.DefaultOptions())
			if err != nil {
				return fmt.Errorf("assessment failed: %w", err)
			}

			formatter, err := format.GetFormatter(cmd.String("format"))
			if err != nil {
				return err
			}

			data := &format.Data{
				Object: filePath,
				Meta:   output.ReadinessToMap(result),
			}

			return formatter.PrintAll([]*format.Data{data}, os.Stdout)
		},
	}
}
