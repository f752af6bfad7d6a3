// Package consistency detects uniformity violations: mixed casing and stray
// whitespace in categorical values, mixed date formats in date-named text
// columns, and extreme numeric outliers suggesting entry errors. Each issue
// carries a fixed impact deducted from 100.
package consistency

import (
	"fmt"
	"strings"

	"github.com/datagrade/datagrade/internal/audit/shared"
	"github.com/datagrade/datagrade/internal/types"
)

const (
	impactCase       = 2
	impactWhitespace = 1
	impactDateFormat = 5
	impactRange      = 3

	// Extreme outliers only matter past this share of values.
	rangeShare = 0.01
)

// Measure scans categorical and numeric columns for uniformity violations.
func Measure(ds *types.Dataset, profiles []types.ColumnProfile) *types.ConsistencyResult {
	result := &types.ConsistencyResult{Score: 100}

	for idx, prof := range profiles {
		switch prof.Type {
		case types.TypeCategorical, types.TypeText:
			checkCasing(&prof, result)
			checkWhitespace(&prof, result)

			if nameHasDateKeyword(prof.Name) {
				checkDateFormats(prof.Name, ds.Column(idx), result)
			}
		case types.TypeNumeric:
			checkRange(&prof, result)
		case types.TypeDatetime:
		}
	}

	if result.Score < 0 {
		result.Score = 0
	}

	return result
}

func checkCasing(prof *types.ColumnProfile, result *types.ConsistencyResult) {
	lowered := make(map[string]struct{}, len(prof.Counts))
	for value := range prof.Counts {
		lowered[strings.ToLower(value)] = struct{}{}
	}

	if len(lowered) < len(prof.Counts) {
		addIssue(result, types.ConsistencyIssue{
			Column:      prof.Name,
			Issue:       "case inconsistency",
			Description: "same values with different capitalization",
			Impact:      impactCase,
		})
	}
}

func checkWhitespace(prof *types.ColumnProfile, result *types.ConsistencyResult) {
	for value := range prof.Counts {
		if value != strings.TrimSpace(value) {
			addIssue(result, types.ConsistencyIssue{
				Column:      prof.Name,
				Issue:       "whitespace inconsistency",
				Description: "values have leading/trailing whitespace",
				Impact:      impactWhitespace,
			})

			return
		}
	}
}

// checkDateFormats flags columns that mix parseable and unparseable date
// strings, or that use more than one date layout.
func checkDateFormats(name string, cells []types.Cell, result *types.ConsistencyResult) {
	layouts := make(map[int]struct{})
	parsed := 0
	failed := 0

	for _, cell := range cells {
		if cell.Kind != types.KindString {
			continue
		}

		if _, layout, ok := types.ParseTime(cell.Str); ok {
			parsed++
			layouts[layout] = struct{}{}
		} else {
			failed++
		}
	}

	if parsed == 0 {
		return
	}

	if failed > 0 || len(layouts) > 1 {
		addIssue(result, types.ConsistencyIssue{
			Column:      name,
			Issue:       "date format inconsistency",
			Description: "multiple date formats or invalid dates detected",
			Impact:      impactDateFormat,
		})
	}
}

func checkRange(prof *types.ColumnProfile, result *types.ConsistencyResult) {
	stats := prof.Numeric
	if stats == nil || len(stats.Values) <= shared.MinOutlierSample {
		return
	}

	iqr := stats.Q3 - stats.Q1
	low := stats.Q1 - shared.ExtremeFence*iqr
	high := stats.Q3 + shared.ExtremeFence*iqr

	extremes := 0

	for _, v := range stats.Values {
		if v < low || v > high {
			extremes++
		}
	}

	if float64(extremes) > float64(len(stats.Values))*rangeShare {
		addIssue(result, types.ConsistencyIssue{
			Column:      prof.Name,
			Issue:       "range inconsistency",
			Description: fmt.Sprintf("%d extreme outliers detected", extremes),
			Impact:      impactRange,
		})
	}
}

func addIssue(result *types.ConsistencyResult, issue types.ConsistencyIssue) {
	result.Issues = append(result.Issues, issue)
	result.Score -= issue.Impact
}

func nameHasDateKeyword(name string) bool {
	name = strings.ToLower(name)

	for _, kw := range shared.DateKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	return false
}
