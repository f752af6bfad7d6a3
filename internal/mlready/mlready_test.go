package mlready

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagrade/datagrade/internal/profile"
	"github.com/datagrade/datagrade/internal/types"
)

func assess(ds *types.Dataset, opts Options) *types.MLReadinessResult {
	return Assess(ds, profile.Columns(ds), opts)
}

func numericRows(columns []string, series ...[]float64) *types.Dataset {
	ds := &types.Dataset{Columns: columns}

	for i := range series[0] {
		row := make([]types.Cell, len(series))
		for j := range series {
			row[j] = types.Number(series[j][i])
		}

		ds.Rows = append(ds.Rows, row)
	}

	return ds
}

func TestAssess_CleanDatasetIsReady(t *testing.T) {
	ds := numericRows([]string{"x", "y"},
		[]float64{1, 5, 2, 8, 3, 9, 4, 7, 6, 0},
		[]float64{4, 1, 9, 2, 7, 0, 8, 3, 5, 6},
	)

	result := assess(ds, Options{})

	assert.InDelta(t, 100, result.Score, 1e-9)
	assert.Equal(t, "ready", result.Status)
	assert.Empty(t, result.Correlations)
	assert.Empty(t, result.LowVariance)
	assert.Empty(t, result.Recommendations)
}

func TestAssess_PerfectCorrelationIsMulticollinearity(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := make([]float64, len(x))

	for i, v := range x {
		y[i] = 2 * v // exactly collinear
	}

	result := assess(numericRows([]string{"a", "b"}, x, y), Options{})

	require.Len(t, result.Correlations, 1)
	pair := result.Correlations[0]
	assert.Equal(t, "a", pair.Column1)
	assert.Equal(t, "b", pair.Column2)
	assert.InDelta(t, 1, pair.Correlation, 1e-9)
	assert.Equal(t, "multicollinearity", pair.Risk)

	assert.InDelta(t, 97, result.Score, 1e-9)

	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "nearly collinear")
}

func TestAssess_NegativeCorrelationFlagged(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	y := make([]float64, len(x))

	for i, v := range x {
		y[i] = -3 * v
	}

	result := assess(numericRows([]string{"a", "b"}, x, y), Options{})

	require.Len(t, result.Correlations, 1)
	assert.InDelta(t, -1, result.Correlations[0].Correlation, 1e-9)
	assert.Equal(t, "multicollinearity", result.Correlations[0].Risk)
}

func TestAssess_ConstantColumnsSkippedInCorrelation(t *testing.T) {
	result := assess(numericRows([]string{"a", "b"},
		[]float64{1, 2, 3, 4, 5},
		[]float64{7, 7, 7, 7, 7},
	), Options{})

	assert.Empty(t, result.Correlations)

	// The constant column is still a low variance finding.
	require.Len(t, result.LowVariance, 1)
	assert.Equal(t, "b", result.LowVariance[0].Column)
	assert.InDelta(t, 95, result.Score, 1e-9)
}

func TestAssess_SingleNumericColumnHasNoCorrelations(t *testing.T) {
	// A column is never correlated with itself.
	result := assess(numericRows([]string{"a"}, []float64{1, 2, 3, 4, 5}), Options{})

	assert.Empty(t, result.Correlations)
}

func TestAssess_CorrelationSkipsRowsWithMissingValues(t *testing.T) {
	ds := &types.Dataset{
		Columns: []string{"a", "b"},
		Rows: [][]types.Cell{
			{types.Number(1), types.Number(2)},
			{types.Number(2), types.Null()},
			{types.Number(3), types.Number(6)},
			{types.Number(4), types.Number(8)},
			{types.Null(), types.Number(1)},
			{types.Number(5), types.Number(10)},
		},
	}

	result := assess(ds, Options{})

	require.Len(t, result.Correlations, 1)
	assert.InDelta(t, 1, result.Correlations[0].Correlation, 1e-9)
}

func TestAssess_ClassBalance(t *testing.T) {
	tests := []struct {
		name       string
		majority   int
		minority   int
		wantStatus string
		wantRatio  float64
	}{
		{name: "balanced", majority: 60, minority: 40, wantStatus: "balanced", wantRatio: 1.5},
		{name: "imbalanced", majority: 80, minority: 20, wantStatus: "imbalanced", wantRatio: 4},
		{name: "severely imbalanced", majority: 95, minority: 5, wantStatus: "severely_imbalanced", wantRatio: 19},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := &types.Dataset{Columns: []string{"label"}}

			for range tc.majority {
				ds.Rows = append(ds.Rows, []types.Cell{types.String("yes")})
			}

			for range tc.minority {
				ds.Rows = append(ds.Rows, []types.Cell{types.String("no")})
			}

			result := assess(ds, Options{})

			require.Len(t, result.ClassBalance, 1)
			balance := result.ClassBalance[0]
			assert.Equal(t, 2, balance.Classes)
			assert.Equal(t, tc.wantStatus, balance.Status)
			assert.InDelta(t, tc.wantRatio, balance.ImbalanceRatio, 1e-9)
			assert.InDelta(t, float64(tc.majority), balance.MajorityPct, 1e-9)
		})
	}
}

func TestAssess_SevereImbalanceDeductsAndRecommends(t *testing.T) {
	ds := &types.Dataset{Columns: []string{"label"}}

	for range 95 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String("yes")})
	}

	for range 5 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String("no")})
	}

	result := assess(ds, Options{})

	assert.InDelta(t, 90, result.Score, 1e-9)
	assert.Equal(t, "ready", result.Status)

	require.Len(t, result.Recommendations, 1)
	assert.Contains(t, result.Recommendations[0], "resampling")
	assert.Contains(t, result.Recommendations[0], "19.0:1")
}

func TestAssess_HighCardinalityColumnsNotTargets(t *testing.T) {
	ds := &types.Dataset{Columns: []string{"code"}}

	// 25 distinct values over 50 rows: categorical, but above the class
	// ceiling for a candidate target.
	for i := range 50 {
		ds.Rows = append(ds.Rows, []types.Cell{types.String(string(rune('a' + i%25)))})
	}

	result := assess(ds, Options{})

	assert.Empty(t, result.ClassBalance)
}

func TestAssess_StatusBands(t *testing.T) {
	// Seven near-constant features deduct 35 points.
	columns := make([]string, 7)
	series := make([][]float64, 7)

	for i := range columns {
		columns[i] = string(rune('a' + i))
		series[i] = []float64{1, 1, 1}
	}

	result := assess(numericRows(columns, series...), Options{})

	assert.InDelta(t, 65, result.Score, 1e-9)
	assert.Equal(t, "needs_improvement", result.Status)
}

func TestAssess_ScoreFloorsAtZero(t *testing.T) {
	columns := make([]string, 25)
	series := make([][]float64, 25)

	for i := range columns {
		columns[i] = string(rune('a' + i))
		series[i] = []float64{1, 1, 1}
	}

	result := assess(numericRows(columns, series...), Options{})

	assert.Zero(t, result.Score)
	assert.Equal(t, "not_ready", result.Status)
}

func TestAssess_CustomCutoffs(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	y := []float64{1.1, 2.3, 2.9, 4.2, 4.8, 6.1, 7.3, 7.9, 9.2, 9.8}

	strict := assess(numericRows([]string{"a", "b"}, x, y), Options{HighCorrelation: 0.5})
	require.Len(t, strict.Correlations, 1)

	// The same pair passes under a cutoff above its correlation. The
	// severe cutoff must also rise so the flag band stays well formed.
	lax := assess(numericRows([]string{"a", "b"}, x, y), Options{
		HighCorrelation:   0.9999,
		SevereCorrelation: 0.99999,
	})
	assert.Empty(t, lax.Correlations)
}

func TestDefaultOptionsFillZeroValues(t *testing.T) {
	opts := Options{}
	applyDefaults(&opts)

	assert.Equal(t, DefaultOptions(), opts)

	custom := Options{HighCorrelation: 0.5}
	applyDefaults(&custom)

	assert.InDelta(t, 0.5, custom.HighCorrelation, 1e-12)
	assert.InDelta(t, 0.9, custom.SevereCorrelation, 1e-12)
}
