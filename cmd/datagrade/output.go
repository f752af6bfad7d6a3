//nolint:wrapcheck
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/farcloser/primordium/format"

	"github.com/datagrade/datagrade"
	"github.com/datagrade/datagrade/internal/output"
)

func outputReport(filePath string, report *datagrade.Report, formatName string, debug bool) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	var meta map[string]any
	if debug {
		meta = output.ReportToMap(report)
	} else {
		meta = buildFriendlyOutput(report)
	}

	data := &format.Data{
		Object: filePath,
		Meta:   meta,
	}

	return formatter.PrintAll([]*format.Data{data}, os.Stdout)
}

// buildFriendlyOutput creates a user-friendly summary of the quality report.
func buildFriendlyOutput(report *datagrade.Report) map[string]any {
	meta := map[string]any{
		"summary": fmt.Sprintf("grade %s (%.1f/100), %d failing dimensions, ML readiness: %s",
			report.Grade, report.Overall, report.FailedDimensions, report.MLReadinessStatus),
	}

	dims := make([]any, 0, len(report.Dimensions))

	for _, dim := range report.Dimensions {
		marker := "  "
		if dim.Status == datagrade.StatusFail {
			marker = "!!"
		}

		dims = append(dims, fmt.Sprintf("%s [%s] %s: %.1f - %s",
			marker, dim.Status, dim.Dimension, dim.Score, dim.Summary))
	}

	meta["dimensions"] = dims

	meta["properties"] = buildProperties(report)

	return meta
}

func buildProperties(report *datagrade.Report) map[string]any {
	props := map[string]any{
		"rows":    humanize.Comma(int64(report.Overview.Rows)),
		"columns": report.Overview.Columns,
		"types": fmt.Sprintf("%d numeric, %d categorical, %d datetime, %d text",
			report.Overview.NumericColumns,
			report.Overview.CategoricalColumns,
			report.Overview.DatetimeColumns,
			report.Overview.TextColumns),
	}

	if r := report.Uniqueness; r != nil && len(r.CandidateKeys) > 0 {
		props["candidate_keys"] = r.CandidateKeys
	}

	if r := report.Completeness; r != nil {
		props["missing_cells"] = humanize.Comma(int64(r.NullCells))
	}

	return props
}
