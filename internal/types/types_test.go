package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell_Canonical(t *testing.T) {
	// The string "1" and the number 1 must not collide.
	assert.NotEqual(t, Number(1).Canonical(), String("1").Canonical())
	assert.NotEqual(t, Null().Canonical(), String("").Canonical())

	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, Time(ts).Canonical(), Time(ts).Canonical())
	assert.NotEqual(t, Time(ts).Canonical(), String(ts.Format(time.RFC3339)).Canonical())
}

func TestCell_Display(t *testing.T) {
	assert.Equal(t, "", Null().Display())
	assert.Equal(t, "1.5", Number(1.5).Display())
	assert.Equal(t, "hello", String("hello").Display())
	assert.Equal(t, "2024-03-15 10:00:00", Time(time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)).Display())
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "RFC3339",
			input:  "2024-03-15T10:00:00Z",
			want:   time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "date with time",
			input:  "2024-03-15 10:00:00",
			want:   time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "bare date",
			input:  "2024-03-15",
			want:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "US slash date",
			input:  "03/15/2024",
			want:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "day-month-year",
			input:  "15-Mar-2024",
			want:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			input:  "  2024-03-15  ",
			want:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "not a date",
			input:  "hello",
			wantOK: false,
		},
		{
			name:   "empty",
			input:  "",
			wantOK: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, _, ok := ParseTime(tc.input)

			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.True(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseTime_LayoutIndexDistinguishesFormats(t *testing.T) {
	_, layoutA, okA := ParseTime("2024-03-15")
	_, layoutB, okB := ParseTime("03/15/2024")

	require.True(t, okA)
	require.True(t, okB)
	assert.NotEqual(t, layoutA, layoutB)
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{input: "42", want: 42, wantOK: true},
		{input: "-3.5", want: -3.5, wantOK: true},
		{input: "1e3", want: 1000, wantOK: true},
		{input: " 7 ", want: 7, wantOK: true},
		{input: "NaN", wantOK: false},
		{input: "Inf", wantOK: false},
		{input: "-Inf", wantOK: false},
		{input: "abc", wantOK: false},
		{input: "", wantOK: false},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseNumber(tc.input)

			assert.Equal(t, tc.wantOK, ok)

			if tc.wantOK {
				assert.InDelta(t, tc.want, got, 1e-12)
			}
		})
	}
}

func TestDataset_ColumnPadsShortRows(t *testing.T) {
	ds := &Dataset{
		Columns: []string{"a", "b"},
		Rows: [][]Cell{
			{Number(1), Number(2)},
			{Number(3)}, // short row
		},
	}

	col := ds.Column(1)

	require.Len(t, col, 2)
	assert.Equal(t, Number(2), col[0])
	assert.True(t, col[1].IsNull())
}
