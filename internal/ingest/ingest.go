// Package ingest loads tabular files into Dataset snapshots. Cell values are
// resolved to tagged variants at this boundary: empty string becomes null,
// then number, then timestamp, else string.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/farcloser/primordium/fault"

	"github.com/datagrade/datagrade/internal/types"
)

var ErrUnsupportedFormat = errors.New("unsupported file format (expected .csv or .json)")

// Load reads a dataset from path, dispatching on the file extension.
func Load(path string) (*types.Dataset, error) {
	file, err := os.Open(path) //nolint:gosec // CLI tool opens user-specified data files
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(file)
	case ".json":
		return LoadJSON(file)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// LoadCSV reads a header row plus data rows. Short records are padded with
// nulls so every row matches the header width.
func LoadCSV(r io.Reader) (*types.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", fault.ErrReadFailure, err)
	}

	ds := &types.Dataset{Columns: header}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: reading record: %w", fault.ErrReadFailure, err)
		}

		row := make([]types.Cell, len(header))

		for i := range header {
			if i < len(record) {
				row[i] = ParseCell(record[i])
			} else {
				row[i] = types.Null()
			}
		}

		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// LoadJSON reads an array of flat objects. Columns are the sorted union of
// keys so repeated loads of the same file produce identical datasets.
func LoadJSON(r io.Reader) (*types.Dataset, error) {
	var records []map[string]any

	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrInvalidJSON, err)
	}

	keys := make(map[string]struct{})

	for _, rec := range records {
		for k := range rec {
			keys[k] = struct{}{}
		}
	}

	columns := make([]string, 0, len(keys))
	for k := range keys {
		columns = append(columns, k)
	}

	sort.Strings(columns)

	ds := &types.Dataset{Columns: columns}

	for _, rec := range records {
		row := make([]types.Cell, len(columns))

		for i, col := range columns {
			row[i] = jsonCell(rec[col])
		}

		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}

// ParseCell resolves one raw string value to a tagged cell. Whitespace-only
// values stay strings so the validity scorer can flag them.
func ParseCell(raw string) types.Cell {
	if raw == "" {
		return types.Null()
	}

	if v, ok := types.ParseNumber(raw); ok {
		return types.Number(v)
	}

	if t, _, ok := types.ParseTime(raw); ok {
		return types.Time(t)
	}

	return types.String(raw)
}

func jsonCell(value any) types.Cell {
	switch v := value.(type) {
	case nil:
		return types.Null()
	case float64:
		return types.Number(v)
	case bool:
		if v {
			return types.String("true")
		}

		return types.String("false")
	case string:
		return ParseCell(v)
	default:
		return types.String(fmt.Sprintf("%v", v))
	}
}
