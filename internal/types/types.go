package types

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// CellKind discriminates the variant held by a Cell.
type CellKind uint8

const (
	KindNull CellKind = iota
	KindNumber
	KindString
	KindTime
)

// Cell is a single tabular value. Mixed-type columns are resolved to one
// inferred ColumnProfile type during profiling, not per-cell downstream.
type Cell struct {
	Kind   CellKind
	Number float64
	Str    string
	Time   time.Time
}

func Null() Cell {
	return Cell{Kind: KindNull}
}

func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

func String(s string) Cell {
	return Cell{Kind: KindString, Str: s}
}

func Time(t time.Time) Cell {
	return Cell{Kind: KindTime, Time: t}
}

func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// Canonical returns a stable string form used for distinct counting and
// full-row equality. Kinds are prefixed so "1" (string) != 1 (number).
func (c Cell) Canonical() string {
	switch c.Kind {
	case KindNull:
		return "\x00"
	case KindNumber:
		return "n:" + strconv.FormatFloat(c.Number, 'g', -1, 64)
	case KindString:
		return "s:" + c.Str
	case KindTime:
		return "t:" + c.Time.Format(time.RFC3339Nano)
	}

	return ""
}

// Display returns the human-readable form of a cell.
func (c Cell) Display() string {
	switch c.Kind {
	case KindNull:
		return ""
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'g', -1, 64)
	case KindString:
		return c.Str
	case KindTime:
		return c.Time.Format("2006-01-02 15:04:05")
	}

	return ""
}

// Dataset is one immutable snapshot of tabular data. Columns preserves the
// source column order; every row holds exactly len(Columns) cells.
type Dataset struct {
	Columns []string
	Rows    [][]Cell
}

func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

func (d *Dataset) NumCols() int {
	return len(d.Columns)
}

// Column returns the cells of column idx in row order. Short rows are padded
// with nulls so callers always see NumRows cells.
func (d *Dataset) Column(idx int) []Cell {
	cells := make([]Cell, 0, len(d.Rows))

	for _, row := range d.Rows {
		if idx < len(row) {
			cells = append(cells, row[idx])
		} else {
			cells = append(cells, Null())
		}
	}

	return cells
}

// timeLayouts accepted when coercing strings to timestamps, tried in order.
//
//nolint:gochecknoglobals // configuration data, effectively const
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"02-Jan-2006",
}

// ParseTime attempts to interpret s as a timestamp. The matched layout index
// is returned so callers can detect mixed formats within one column.
func ParseTime(s string) (time.Time, int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, -1, false
	}

	for i, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, i, true
		}
	}

	return time.Time{}, -1, false
}

// ParseNumber attempts to interpret s as a finite number.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}

	return v, true
}
