package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

func digestCommand() *cli.Command {
	return &cli.Command{
		Name:      "digest",
		Usage:     "Produce a summary digest from a datagrade JSONL report",
		ArgsUsage: "<report.jsonl>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dimension",
				Usage: "Show datasets failing a specific dimension (e.g., completeness, accuracy)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return errors.New("expected exactly one argument: path to report.jsonl") //nolint:err113
			}

			return runDigest(cmd.Args().First(), cmd.String("dimension"))
		},
	}
}

func runDigest(reportPath, dimensionFilter string) error {
	records, err := readRecords(reportPath)
	if err != nil {
		return err
	}

	printDigest(records)

	if dimensionFilter != "" {
		printDimensionDetail(records, dimensionFilter)
	}

	return nil
}

func readRecords(path string) ([]digestRecord, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified report files
	if err != nil {
		return nil, fmt.Errorf("opening report: %w", err)
	}
	defer file.Close()

	var records []digestRecord

	scanner := bufio.NewScanner(file)

	const maxLineSize = 4 * 1024 * 1024 // reports with full column profiles get large
	scanner.Buffer(make([]byte, 0, maxLineSize), maxLineSize)

	for scanner.Scan() {
		var rec digestRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			records = append(records, digestRecord{Error: "parse error"})

			continue
		}

		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	return records, nil
}

func printDigest(records []digestRecord) {
	total := len(records)
	failed := 0
	gradeDist := map[string]int{}
	readinessDist := map[string]int{}
	dimStats := map[string]*dimensionBreakdown{}

	for _, rec := range records {
		if rec.Error != "" || rec.Report == nil {
			failed++

			continue
		}

		gradeDist[rec.Report.Summary.Grade]++
		readinessDist[rec.Report.Summary.MLReadinessStatus]++

		for _, dim := range rec.Report.Dimensions {
			breakdown, ok := dimStats[dim.Dimension]
			if !ok {
				breakdown = &dimensionBreakdown{Dimension: dim.Dimension}
				dimStats[dim.Dimension] = breakdown
			}

			breakdown.Total++

			switch dim.Status {
			case "fail":
				breakdown.Fail++
			case "warning":
				breakdown.Warning++
			case "pass":
				breakdown.Pass++
			}
		}
	}

	analyzed := total - failed

	fmt.Println("=== Datagrade Report Digest ===")
	fmt.Println()
	fmt.Printf("Total datasets:  %s\n", humanize.Comma(int64(total)))
	fmt.Printf("Failed:          %d\n", failed)
	fmt.Printf("Analyzed:        %d\n", analyzed)
	fmt.Println()

	fmt.Println("--- Grades ---")

	for _, grade := range []string{"A", "B", "C", "D", "F"} {
		if count, ok := gradeDist[grade]; ok && count > 0 {
			fmt.Printf("  %s:  %d\n", grade, count)
		}
	}

	fmt.Println()

	fmt.Println("--- ML Readiness ---")

	for _, status := range []string{"ready", "needs_improvement", "not_ready"} {
		if count, ok := readinessDist[status]; ok && count > 0 {
			fmt.Printf("  %-18s %d\n", status+":", count)
		}
	}

	fmt.Println()

	fmt.Println("--- Dimensions ---")

	breakdowns := make([]*dimensionBreakdown, 0, len(dimStats))
	for _, bd := range dimStats {
		breakdowns = append(breakdowns, bd)
	}

	slices.SortFunc(breakdowns, func(a, b *dimensionBreakdown) int {
		return b.Fail - a.Fail
	})

	for _, bd := range breakdowns {
		fmt.Printf("  %s\n", bd.Dimension)
		fmt.Printf("    total: %d  fail: %d  warning: %d  pass: %d\n", bd.Total, bd.Fail, bd.Warning, bd.Pass)
	}
}

func printDimensionDetail(records []digestRecord, dimension string) {
	fmt.Println()

	found := 0

	for _, rec := range records {
		if rec.Error != "" || rec.Report == nil {
			continue
		}

		for _, dim := range rec.Report.Dimensions {
			if dim.Dimension != dimension || dim.Status != "fail" {
				continue
			}

			file := rec.File
			if file == "" {
				file = "(redacted)"
			}

			fmt.Printf("%s\n", file)
			fmt.Printf("  score %.1f: %s\n", dim.Score, dim.Summary)

			found++
		}
	}

	if found == 0 {
		fmt.Printf("No datasets failing %s\n", dimension)

		return
	}

	fmt.Println()
	fmt.Printf("%d datasets failing %s\n", found, dimension)
}
