// Package uniqueness measures the absence of duplicate records. Duplicates
// are identified by full-row equality over canonical cell forms.
package uniqueness

import (
	"strings"

	"github.com/datagrade/datagrade/internal/audit/shared"
	"github.com/datagrade/datagrade/internal/types"
)

// Measure counts distinct rows and per-column cardinality. The invariant
// DuplicateRows + UniqueRows == TotalRows holds for all inputs.
func Measure(ds *types.Dataset, profiles []types.ColumnProfile) *types.UniquenessResult {
	result := &types.UniquenessResult{TotalRows: ds.NumRows()}

	seen := make(map[string]struct{}, len(ds.Rows))

	var builder strings.Builder

	for _, row := range ds.Rows {
		builder.Reset()

		for _, cell := range row {
			builder.WriteString(cell.Canonical())
			builder.WriteByte('\x1f')
		}

		seen[builder.String()] = struct{}{}
	}

	result.UniqueRows = len(seen)
	result.DuplicateRows = result.TotalRows - result.UniqueRows

	if result.TotalRows > 0 {
		result.Score = float64(result.UniqueRows) / float64(result.TotalRows) * 100
		result.DuplicatePct = float64(result.DuplicateRows) / float64(result.TotalRows) * 100
	}

	for _, prof := range profiles {
		ratio := 0.0
		if prof.NonNull > 0 {
			ratio = float64(prof.Distinct) / float64(prof.NonNull)
		}

		// A key candidate is near-unique and fully populated.
		isKey := ratio > shared.CandidateKeyCardinality && prof.NonNull == ds.NumRows() && ds.NumRows() > 0

		result.Columns = append(result.Columns, types.ColumnCardinality{
			Column:           prof.Name,
			DistinctValues:   prof.Distinct,
			CardinalityRatio: ratio * 100,
			IsCandidateKey:   isKey,
		})

		if isKey {
			result.CandidateKeys = append(result.CandidateKeys, prof.Name)
		}
	}

	return result
}
