//nolint:wrapcheck
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/datagrade/datagrade"
	"github.com/datagrade/datagrade/internal/ingest"
	"github.com/datagrade/datagrade/internal/output"
)

const outputFile = "datagrade-report.jsonl"

var (
	errNotDirectory = errors.New("not a directory")
	errNoDataFiles  = errors.New("no .csv or .json files found")
)

func reportCommand() *cli.Command {
	return &cli.Command{
		Name:      "report",
		Usage:     "Scan a folder of tabular files and write a datagrade JSONL report",
		ArgsUsage: "<folder>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "redact-path",
				Usage: "Strip file paths from the report",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"j"},
				Usage:   "Number of concurrent workers",
				Value:   runtime.NumCPU(),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one argument: folder path") //nolint:err113
			}

			folder := cmd.Args().First()
			redact := cmd.Bool("redact-path")
			workers := max(cmd.Int("workers"), 1)

			return runReport(ctx, folder, redact, workers)
		},
	}
}

func runReport(_ context.Context, folder string, redact bool, workers int) error {
	info, err := os.Stat(folder)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%q: %w", folder, errNotDirectory)
	}

	files, err := collectDataFiles(folder)
	if err != nil {
		return fmt.Errorf("scanning folder: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("%q: %w", folder, errNoDataFiles)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to analyze (%d workers)\n", len(files), workers)

	// Timeliness is anchored once so every file in the batch is scored
	// against the same clock.
	opts := datagrade.DefaultOptions()
	opts.AnalysisTime = time.Now()

	results := make([]Record, len(files))

	var progress atomic.Int64

	sem := make(chan struct{}, workers)

	var waitGroup sync.WaitGroup

	for idx, filePath := range files {
		waitGroup.Add(1)

		go func(idx int, filePath string) {
			defer waitGroup.Done()

			sem <- struct{}{}

			defer func() { <-sem }()

			results[idx] = processFile(filePath, opts)

			done := progress.Add(1)
			fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, len(files), filePath)
		}(idx, filePath)
	}

	waitGroup.Wait()

	return writeReport(results, redact)
}

func collectDataFiles(folder string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(folder, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			return nil
		}

		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv", ".json":
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func processFile(filePath string, opts datagrade.Options) Record {
	start := time.Now()

	rec := Record{File: filePath, Timing: &RecordTiming{}}

	ds, err := ingest.Load(filePath)
	rec.Timing.LoadMs = msSince(start)

	if err != nil {
		rec.Error = err.Error()
		rec.Timing.TotalMs = msSince(start)

		return rec
	}

	analyzeStart := time.Now()

	report, err := datagrade.Analyze(ds, opts)
	rec.Timing.AnalyzeMs = msSince(analyzeStart)
	rec.Timing.TotalMs = msSince(start)

	if err != nil {
		rec.Error = err.Error()

		return rec
	}

	rec.Report = output.ReportToMap(report)

	return rec
}

func msSince(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}

func writeReport(results []Record, redact bool) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)

	for i := range results {
		if redact {
			results[i].File = ""
		}

		if err := encoder.Encode(results[i]); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	fmt.Fprintf(os.Stderr, "Report written to %s\n", outputFile)

	return nil
}
