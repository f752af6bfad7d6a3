// Package accuracy approximates correctness via IQR outlier analysis.
// True accuracy needs ground truth; outlier rates are the standard proxy.
package accuracy

import (
	"github.com/datagrade/datagrade/internal/audit/shared"
	"github.com/datagrade/datagrade/internal/types"
)

const (
	// Outlier percentage bands: per-column status and score deductions.
	warnPct = 2.0
	failPct = 5.0

	deductWarn = 2
	deductFail = 5
)

// Measure computes IQR fences per numeric column and counts values outside
// them. Columns with fewer than the minimum sample are skipped entirely.
func Measure(_ *types.Dataset, profiles []types.ColumnProfile) *types.AccuracyResult {
	result := &types.AccuracyResult{Score: 100}

	for _, prof := range profiles {
		if prof.Type != types.TypeNumeric || prof.Numeric == nil {
			continue
		}

		stats := prof.Numeric
		if len(stats.Values) < shared.MinOutlierSample {
			continue
		}

		iqr := stats.Q3 - stats.Q1
		low := stats.Q1 - shared.OutlierFence*iqr
		high := stats.Q3 + shared.OutlierFence*iqr

		outliers := 0

		for _, v := range stats.Values {
			if v < low || v > high {
				outliers++
			}
		}

		pct := float64(outliers) / float64(len(stats.Values)) * 100

		switch {
		case pct > failPct:
			result.Score -= deductFail
		case pct > warnPct:
			result.Score -= deductWarn
		}

		result.Columns = append(result.Columns, types.OutlierStats{
			Column:       prof.Name,
			OutlierCount: outliers,
			OutlierPct:   pct,
			LowerBound:   low,
			UpperBound:   high,
			Mean:         stats.Mean,
			Median:       stats.Median,
			Std:          stats.Std,
			Skewness:     stats.Skewness,
			Status:       outlierStatus(pct),
		})
	}

	if result.Score < 0 {
		result.Score = 0
	}

	return result
}

func outlierStatus(pct float64) string {
	switch {
	case pct <= warnPct:
		return "pass"
	case pct <= failPct:
		return "warning"
	default:
		return "fail"
	}
}
