// Package completeness measures the extent to which data is not missing:
// the share of non-null cells across the dataset, with per-column detail.
package completeness

import (
	"sort"

	"github.com/datagrade/datagrade/internal/types"
)

const (
	// Per-column non-null ratio thresholds, in percent.
	columnPass = 95.0
	columnWarn = 80.0
)

// Measure is a pure function over the column profiles. Null and non-null
// counts per column always sum to the row count, so the totals are exact.
func Measure(ds *types.Dataset, profiles []types.ColumnProfile) *types.CompletenessResult {
	result := &types.CompletenessResult{}

	rows := ds.NumRows()

	for _, prof := range profiles {
		result.TotalCells += rows
		result.NonNullCells += prof.NonNull
		result.NullCells += prof.Nulls

		ratio := 100.0
		if rows > 0 {
			ratio = float64(prof.NonNull) / float64(rows) * 100
		}

		entry := types.ColumnCompleteness{
			Column:  prof.Name,
			NonNull: prof.NonNull,
			Nulls:   prof.Nulls,
			Ratio:   ratio,
			Status:  columnStatus(ratio),
		}

		if entry.Status == "fail" {
			result.ColumnsBelowThreshold++
		}

		result.Columns = append(result.Columns, entry)
	}

	// Worst columns first.
	sort.SliceStable(result.Columns, func(i, j int) bool {
		return result.Columns[i].Ratio < result.Columns[j].Ratio
	})

	if result.TotalCells > 0 {
		result.Score = float64(result.NonNullCells) / float64(result.TotalCells) * 100
	}

	return result
}

func columnStatus(ratio float64) string {
	switch {
	case ratio >= columnPass:
		return "pass"
	case ratio >= columnWarn:
		return "warning"
	default:
		return "fail"
	}
}
