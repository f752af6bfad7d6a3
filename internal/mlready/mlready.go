// Package mlready assesses whether a dataset is suitable for model training:
// class balance of candidate target columns, pairwise feature correlation,
// and near-constant features. Independent of the quality dimensions.
package mlready

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/datagrade/datagrade/internal/types"
)

// Options holds the assessment cutoffs. Zero values are filled with
// DefaultOptions by Assess.
type Options struct {
	HighCorrelation   float64 // |r| above this is flagged (default 0.7)
	SevereCorrelation float64 // |r| above this is a multicollinearity risk (default 0.9)

	BalancedRatio   float64 // imbalance below this is balanced (default 3)
	ImbalancedRatio float64 // imbalance below this is imbalanced, above severe (default 10)

	MinClasses int // candidate targets need at least this many classes (default 2)
	MaxClasses int // cardinality ceiling for candidate targets (default 20)

	LowVarianceFloor float64 // variance below this is near-constant (default 0.01)
}

func DefaultOptions() Options {
	return Options{
		HighCorrelation:   0.7,
		SevereCorrelation: 0.9,
		BalancedRatio:     3,
		ImbalancedRatio:   10,
		MinClasses:        2,
		MaxClasses:        20,
		LowVarianceFloor:  0.01,
	}
}

const (
	deductPerCorrelation = 3
	deductPerLowVariance = 5
	deductPerSevereClass = 10

	readyScore = 80
	needsScore = 60
)

// Assess runs the full ML-readiness pass over profiled columns.
func Assess(ds *types.Dataset, profiles []types.ColumnProfile, opts Options) *types.MLReadinessResult {
	applyDefaults(&opts)

	result := &types.MLReadinessResult{
		Correlations: correlationScan(ds, profiles, opts),
		ClassBalance: classBalance(profiles, opts),
		LowVariance:  lowVariance(profiles, opts),
	}

	severe := 0

	for _, cb := range result.ClassBalance {
		if cb.Status == "severely_imbalanced" {
			severe++
		}
	}

	score := 100.0
	score -= float64(len(result.Correlations) * deductPerCorrelation)
	score -= float64(len(result.LowVariance) * deductPerLowVariance)
	score -= float64(severe * deductPerSevereClass)

	if score < 0 {
		score = 0
	}

	result.Score = score

	switch {
	case score >= readyScore:
		result.Status = "ready"
	case score >= needsScore:
		result.Status = "needs_improvement"
	default:
		result.Status = "not_ready"
	}

	result.Recommendations = recommendations(result)

	return result
}

func applyDefaults(opts *Options) {
	defaults := DefaultOptions()

	if opts.HighCorrelation == 0 {
		opts.HighCorrelation = defaults.HighCorrelation
	}

	if opts.SevereCorrelation == 0 {
		opts.SevereCorrelation = defaults.SevereCorrelation
	}

	if opts.BalancedRatio == 0 {
		opts.BalancedRatio = defaults.BalancedRatio
	}

	if opts.ImbalancedRatio == 0 {
		opts.ImbalancedRatio = defaults.ImbalancedRatio
	}

	if opts.MinClasses == 0 {
		opts.MinClasses = defaults.MinClasses
	}

	if opts.MaxClasses == 0 {
		opts.MaxClasses = defaults.MaxClasses
	}

	if opts.LowVarianceFloor == 0 {
		opts.LowVarianceFloor = defaults.LowVarianceFloor
	}
}

// correlationScan computes Pearson correlation for every numeric column pair
// over rows where both cells hold numbers. Self-pairs are excluded by
// construction. Fewer than two numeric columns yields an empty list.
func correlationScan(ds *types.Dataset, profiles []types.ColumnProfile, opts Options) []types.CorrelatedPair {
	numericIdx := make([]int, 0, len(profiles))

	for idx, prof := range profiles {
		if prof.Type == types.TypeNumeric {
			numericIdx = append(numericIdx, idx)
		}
	}

	if len(numericIdx) < 2 {
		return nil
	}

	var pairs []types.CorrelatedPair

	for a := 0; a < len(numericIdx); a++ {
		for b := a + 1; b < len(numericIdx); b++ {
			x, y := alignedValues(ds, numericIdx[a], numericIdx[b])
			if len(x) < 2 {
				continue
			}

			// Correlation is undefined for constant series.
			if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
				continue
			}

			r := stat.Correlation(x, y, nil)

			absR := r
			if absR < 0 {
				absR = -absR
			}

			if absR < opts.HighCorrelation {
				continue
			}

			risk := "high_correlation"
			if absR >= opts.SevereCorrelation {
				risk = "multicollinearity"
			}

			pairs = append(pairs, types.CorrelatedPair{
				Column1:     ds.Columns[numericIdx[a]],
				Column2:     ds.Columns[numericIdx[b]],
				Correlation: r,
				Risk:        risk,
			})
		}
	}

	return pairs
}

// alignedValues extracts value pairs from rows where both columns are numeric.
func alignedValues(ds *types.Dataset, colA, colB int) ([]float64, []float64) {
	var x, y []float64

	for _, row := range ds.Rows {
		if colA >= len(row) || colB >= len(row) {
			continue
		}

		va, oka := numericValue(row[colA])
		vb, okb := numericValue(row[colB])

		if oka && okb {
			x = append(x, va)
			y = append(y, vb)
		}
	}

	return x, y
}

func numericValue(cell types.Cell) (float64, bool) {
	switch cell.Kind {
	case types.KindNumber:
		return cell.Number, true
	case types.KindString:
		return types.ParseNumber(cell.Str)
	case types.KindNull, types.KindTime:
	}

	return 0, false
}

// classBalance inspects categorical columns within the cardinality ceiling
// as candidate classification targets.
func classBalance(profiles []types.ColumnProfile, opts Options) []types.ClassBalance {
	var entries []types.ClassBalance

	for _, prof := range profiles {
		if prof.Type != types.TypeCategorical || len(prof.Counts) == 0 {
			continue
		}

		classes := len(prof.Counts)
		if classes < opts.MinClasses || classes > opts.MaxClasses {
			continue
		}

		majority, minority, total := 0, -1, 0

		for _, count := range prof.Counts {
			total += count

			if count > majority {
				majority = count
			}

			if minority < 0 || count < minority {
				minority = count
			}
		}

		if minority <= 0 || total == 0 {
			continue
		}

		ratio := float64(majority) / float64(minority)

		status := "severely_imbalanced"

		switch {
		case ratio < opts.BalancedRatio:
			status = "balanced"
		case ratio < opts.ImbalancedRatio:
			status = "imbalanced"
		}

		entries = append(entries, types.ClassBalance{
			Column:         prof.Name,
			Classes:        classes,
			ImbalanceRatio: ratio,
			MajorityPct:    float64(majority) / float64(total) * 100,
			MinorityPct:    float64(minority) / float64(total) * 100,
			Status:         status,
		})
	}

	return entries
}

func lowVariance(profiles []types.ColumnProfile, opts Options) []types.LowVarianceFeature {
	var features []types.LowVarianceFeature

	for _, prof := range profiles {
		if prof.Type != types.TypeNumeric || prof.Numeric == nil {
			continue
		}

		// Variance of fewer than two values is undefined, not low.
		if len(prof.Numeric.Values) < 2 {
			continue
		}

		if prof.Numeric.Variance < opts.LowVarianceFloor {
			features = append(features, types.LowVarianceFeature{
				Column:   prof.Name,
				Variance: prof.Numeric.Variance,
			})
		}
	}

	return features
}

// recommendations renders deterministic guidance from the findings.
func recommendations(result *types.MLReadinessResult) []string {
	var recs []string

	for _, cb := range result.ClassBalance {
		if cb.Status == "severely_imbalanced" {
			recs = append(recs, fmt.Sprintf(
				"Consider resampling column %s due to %.1f:1 class imbalance",
				cb.Column, cb.ImbalanceRatio,
			))
		}
	}

	for _, pair := range result.Correlations {
		if pair.Risk == "multicollinearity" {
			recs = append(recs, fmt.Sprintf(
				"Columns %s and %s are nearly collinear (r=%.2f); consider dropping one",
				pair.Column1, pair.Column2, pair.Correlation,
			))
		}
	}

	for _, lv := range result.LowVariance {
		recs = append(recs, fmt.Sprintf(
			"Column %s is near-constant (variance %.4f); consider removing it",
			lv.Column, lv.Variance,
		))
	}

	sort.Strings(recs)

	return recs
}
