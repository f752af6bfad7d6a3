package timeliness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrade/datagrade/internal/profile"
	"github.com/datagrade/datagrade/internal/types"
)

var clock = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func timeColumn(name string, times ...time.Time) *types.Dataset {
	ds := &types.Dataset{Columns: []string{name}}

	for _, ts := range times {
		ds.Rows = append(ds.Rows, []types.Cell{types.Time(ts)})
	}

	return ds
}

func TestMeasure_NoDatetimeColumns(t *testing.T) {
	ds := &types.Dataset{
		Columns: []string{"v"},
		Rows:    [][]types.Cell{{types.Number(1)}, {types.Number(2)}},
	}

	result := Measure(ds, profile.Columns(ds), clock)

	assert.False(t, result.Applicable)
	assert.InDelta(t, 100, result.Score, 1e-9)
	assert.Empty(t, result.Columns)
}

func TestMeasure_FreshnessBands(t *testing.T) {
	tests := []struct {
		name      string
		latest    time.Time
		freshness string
		score     float64
	}{
		{
			name:      "current data",
			latest:    clock.AddDate(0, 0, -10),
			freshness: "current",
			score:     100,
		},
		{
			name:      "recent data",
			latest:    clock.AddDate(0, 0, -60),
			freshness: "recent",
			score:     100,
		},
		{
			name:      "aging data deducts",
			latest:    clock.AddDate(0, 0, -120),
			freshness: "stale",
			score:     90,
		},
		{
			name:      "stale data deducts more",
			latest:    clock.AddDate(0, 0, -400),
			freshness: "stale",
			score:     80,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := timeColumn("updated_at", tc.latest.AddDate(0, 0, -365), tc.latest)

			result := Measure(ds, profile.Columns(ds), clock)

			assert.True(t, result.Applicable)
			assert.InDelta(t, tc.score, result.Score, 1e-9)

			require.Len(t, result.Columns, 1)
			assert.Equal(t, tc.freshness, result.Columns[0].Freshness)
			assert.True(t, result.Columns[0].Latest.Equal(tc.latest))
			assert.Equal(t, 365, result.Columns[0].TimespanDays)
		})
	}
}

func TestMeasure_DateNamedTextColumn(t *testing.T) {
	// More than half the values parse as dates, so the column counts as a
	// timestamp source despite the unparseable entries.
	ds := &types.Dataset{Columns: []string{"ship_date"}}

	for range 6 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String("2024-05-20")})
	}

	for range 4 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String("unknown")})
	}

	result := Measure(ds, profile.Columns(ds), clock)

	assert.True(t, result.Applicable)
	require.Len(t, result.Columns, 1)
	assert.Equal(t, "ship_date", result.Columns[0].Column)
	assert.Equal(t, "current", result.Columns[0].Freshness)
}

func TestMeasure_TextColumnBelowParseShareIgnored(t *testing.T) {
	ds := &types.Dataset{Columns: []string{"ship_date"}}

	for range 3 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String("2024-05-20")})
	}

	for range 7 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String("unknown")})
	}

	result := Measure(ds, profile.Columns(ds), clock)

	assert.False(t, result.Applicable)
}

func TestMeasure_ColumnCap(t *testing.T) {
	ds := &types.Dataset{
		Columns: []string{"t1", "t2", "t3", "t4"},
	}

	ts := clock.AddDate(0, 0, -5)
	ds.Rows = append(ds.Rows, []types.Cell{
		types.Time(ts), types.Time(ts), types.Time(ts), types.Time(ts),
	})

	result := Measure(ds, profile.Columns(ds), clock)

	assert.Len(t, result.Columns, 3)
}

func TestMeasure_DeductionsAccumulate(t *testing.T) {
	old := clock.AddDate(0, 0, -400)
	aging := clock.AddDate(0, 0, -120)

	ds := &types.Dataset{
		Columns: []string{"created", "updated"},
		Rows: [][]types.Cell{
			{types.Time(old), types.Time(aging)},
		},
	}

	result := Measure(ds, profile.Columns(ds), clock)

	assert.True(t, result.Applicable)
	assert.InDelta(t, 70, result.Score, 1e-9)
}
