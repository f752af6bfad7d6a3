// Package timeliness measures data freshness: how old the newest timestamp
// of each datetime column is relative to the analysis clock, and how the
// values spread. Datasets without datetime columns yield a not-applicable
// result with a neutral score, never an error.
package timeliness

import (
	"strings"
	"time"

	"github.com/datagrade/datagrade/internal/audit/shared"
	"github.com/datagrade/datagrade/internal/types"
)

const (
	// Deductions for stale data, by age of the newest value.
	staleDays   = 365
	agingDays   = 90
	deductStale = 20
	deductAging = 10

	// Freshness labels.
	currentDays = 30
	recentDays  = 90

	// At most this many date columns are analyzed.
	maxColumns = 3

	// Share of values in a date-named text column that must parse before
	// the column counts as a timestamp source.
	textParseShare = 0.5
)

// Measure evaluates recency per datetime column against now. The clock is a
// parameter so repeated runs over the same snapshot are reproducible.
func Measure(ds *types.Dataset, profiles []types.ColumnProfile, now time.Time) *types.TimelinessResult {
	result := &types.TimelinessResult{Score: 100}

	for idx, prof := range profiles {
		if len(result.Columns) >= maxColumns {
			break
		}

		tr := columnTimeRange(ds, idx, &prof)
		if tr == nil {
			continue
		}

		daysOld := int(now.Sub(tr.Max).Hours() / 24)
		timespan := int(tr.Max.Sub(tr.Min).Hours() / 24)

		result.Columns = append(result.Columns, types.RecencyStats{
			Column:          prof.Name,
			Earliest:        tr.Min,
			Latest:          tr.Max,
			DaysSinceLatest: daysOld,
			TimespanDays:    timespan,
			Freshness:       freshness(daysOld),
		})

		switch {
		case daysOld > staleDays:
			result.Score -= deductStale
		case daysOld > agingDays:
			result.Score -= deductAging
		}
	}

	if len(result.Columns) == 0 {
		// Neutral: no evidence either way. Excluded from weighting.
		return &types.TimelinessResult{Applicable: false, Score: 100}
	}

	result.Applicable = true

	if result.Score < 0 {
		result.Score = 0
	}

	return result
}

// columnTimeRange returns the time range for datetime-typed columns, and for
// date-named text columns where enough values parse as timestamps.
func columnTimeRange(ds *types.Dataset, idx int, prof *types.ColumnProfile) *types.TimeRange {
	if prof.Type == types.TypeDatetime && prof.Times != nil {
		return prof.Times
	}

	if prof.NonNull == 0 || !nameHasDateKeyword(prof.Name) {
		return nil
	}

	var tr types.TimeRange

	for _, cell := range ds.Column(idx) {
		var (
			t  time.Time
			ok bool
		)

		switch cell.Kind {
		case types.KindTime:
			t, ok = cell.Time, true
		case types.KindString:
			t, _, ok = types.ParseTime(cell.Str)
		case types.KindNull, types.KindNumber:
		}

		if !ok {
			continue
		}

		if tr.Count == 0 || t.Before(tr.Min) {
			tr.Min = t
		}

		if tr.Count == 0 || t.After(tr.Max) {
			tr.Max = t
		}

		tr.Count++
	}

	if float64(tr.Count) <= float64(prof.NonNull)*textParseShare {
		return nil
	}

	return &tr
}

func freshness(daysOld int) string {
	switch {
	case daysOld < currentDays:
		return "current"
	case daysOld < recentDays:
		return "recent"
	default:
		return "stale"
	}
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
