//nolint:wrapcheck
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/farcloser/primordium/format"
	"github.com/urfave/cli/v3"

	"github.com/datagrade/datagrade"
	"github.com/datagrade/datagrade/internal/ingest"
	"github.com/datagrade/datagrade/internal/output"
)

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:      "profile",
		Usage:     "Print per-column statistics without quality scoring",
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

			// Profiles ride on the full report; only the profiler output
			// is displayed here.
			report, err := datagrade.Analyze(ds, datagrade.DefaultOptions())
			if err != nil {
				return fmt.Errorf("profiling failed: %w", err)
			}

			info, statErr := os.Stat(filePath)

			meta := map[string]any{
				"rows":    humanize.Comma(int64(report.Overview.Rows)),
				"columns": output.ProfilesToMaps(report.Profiles),
			}

			if statErr == nil {
				meta["file_size"] = humanize.IBytes(uint64(info.Size())) //nolint:gosec // file sizes are non-negative
			}

			formatter, err := format.GetFormatter(cmd.String("format"))
			if err != nil {
				return err
			}

			data := &format.Data{
				Object: filePath,
				Meta:   meta,
			}

			return formatter.PrintAll([]*format.Data{data}, os.Stdout)
		},
	}
}
