// Package profile derives per-column statistics from a dataset snapshot.
// Profiles are created fresh per analysis run and never mutated after.
package profile

import (
	"slices"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/datagrade/datagrade/internal/types"
)

const (
	// Share of non-null values that must parse as the candidate type.
	datetimeShare = 0.90
	numericShare  = 0.90

	// A column is categorical when its cardinality stays below this ratio
	// of non-null values, or below the absolute class ceiling.
	categoricalRatio    = 0.5
	categoricalDistinct = 20

	topValueCount = 10
)

// Columns profiles every column of the dataset, preserving column order.
// A column with zero non-null values yields a degenerate profile with zero
// stats rather than an error.
func Columns(ds *types.Dataset) []types.ColumnProfile {
	profiles := make([]types.ColumnProfile, 0, ds.NumCols())

	for idx, name := range ds.Columns {
		profiles = append(profiles, profileColumn(name, ds.Column(idx)))
	}

	return profiles
}

func profileColumn(name string, cells []types.Cell) types.ColumnProfile {
	prof := types.ColumnProfile{Name: name, Type: types.TypeText}

	var (
		numbers []float64
		times   []time.Time
	)

	distinct := make(map[string]struct{})
	counts := make(map[string]int)

	for _, cell := range cells {
		if cell.IsNull() {
			prof.Nulls++

			continue
		}

		prof.NonNull++
		distinct[cell.Canonical()] = struct{}{}
		counts[cell.Display()]++

		switch cell.Kind {
		case types.KindNumber:
			numbers = append(numbers, cell.Number)
		case types.KindTime:
			times = append(times, cell.Time)
		case types.KindString:
			// Coercion pass: typed ingestion already resolved most cells,
			// but programmatic datasets may carry numeric or date strings.
			if v, ok := types.ParseNumber(cell.Str); ok {
				numbers = append(numbers, v)
			} else if t, _, ok := types.ParseTime(cell.Str); ok {
				times = append(times, t)
			}
		case types.KindNull:
		}
	}

	prof.Distinct = len(distinct)

	prof.Type = inferType(prof.NonNull, len(numbers), len(times), prof.Distinct)

	switch prof.Type {
	case types.TypeNumeric:
		prof.Numeric = numericStats(numbers)
	case types.TypeDatetime:
		prof.Times = timeRange(times)
	case types.TypeCategorical, types.TypeText:
		prof.Counts = counts
		prof.TopValues = topValues(counts)
	}

	return prof
}

// inferType classifies with fixed precedence: datetime, then numeric, then
// categorical by cardinality, else text.
func inferType(nonNull, numeric, timestamps, distinct int) types.ColumnType {
	if nonNull == 0 {
		return types.TypeText
	}

	total := float64(nonNull)

	if float64(timestamps)/total >= datetimeShare {
		return types.TypeDatetime
	}

	if float64(numeric)/total >= numericShare {
		return types.TypeNumeric
	}

	if float64(distinct)/total <= categoricalRatio || distinct <= categoricalDistinct {
		return types.TypeCategorical
	}

	return types.TypeText
}

func numericStats(values []float64) *types.NumericStats {
	if len(values) == 0 {
		return nil
	}

	sorted := slices.Clone(values)
	sort.Float64s(sorted)

	stats := &types.NumericStats{
		Mean:   stat.Mean(sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Median: quantile(sorted, 0.5),
		Q1:     quantile(sorted, 0.25),
		Q3:     quantile(sorted, 0.75),
		Values: sorted,
	}

	if len(sorted) > 1 {
		stats.Std = stat.StdDev(sorted, nil)
		stats.Variance = stat.Variance(sorted, nil)

		// Skew divides by the cube of the deviation; constant columns
		// would produce NaN.
		if stats.Variance > 0 {
			stats.Skewness = stat.Skew(sorted, nil)
		}
	}

	return stats
}

// quantile is the linear-interpolation quantile over sorted values:
// h = (n-1)p, interpolated between adjacent order statistics. This is the
// numpy/pandas default; gonum's stat.Quantile follows the empirical-CDF
// convention and yields different quartiles on small samples.
func quantile(sorted []float64, p float64) float64 {
	h := p * float64(len(sorted)-1)
	i := int(h)

	if i >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	return sorted[i] + (h-float64(i))*(sorted[i+1]-sorted[i])
}

func timeRange(times []time.Time) *types.TimeRange {
	if len(times) == 0 {
		return nil
	}

	tr := &types.TimeRange{Min: times[0], Max: times[0], Count: len(times)}

	for _, t := range times[1:] {
		if t.Before(tr.Min) {
			tr.Min = t
		}

		if t.After(tr.Max) {
			tr.Max = t
		}
	}

	return tr
}

func topValues(counts map[string]int) []types.ValueCount {
	entries := make([]types.ValueCount, 0, len(counts))
	for value, count := range counts {
		entries = append(entries, types.ValueCount{Value: value, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}

		return entries[i].Value < entries[j].Value
	})

	if len(entries) > topValueCount {
		entries = entries[:topValueCount]
	}

	return entries
}
