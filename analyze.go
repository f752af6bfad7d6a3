package datagrade

import (
	"errors"
	"fmt"
	"time"

	"github.com/datagrade/datagrade/internal/audit/accuracy"
	"github.com/datagrade/datagrade/internal/audit/completeness"
	"github.com/datagrade/datagrade/internal/audit/consistency"
	"github.com/datagrade/datagrade/internal/audit/timeliness"
	"github.com/datagrade/datagrade/internal/audit/uniqueness"
	"github.com/datagrade/datagrade/internal/audit/validity"
	"github.com/datagrade/datagrade/internal/mlready"
	"github.com/datagrade/datagrade/internal/profile"
	"github.com/datagrade/datagrade/internal/types"
)

/*
Usage:

	report, err := datagrade.Analyze(dataset, datagrade.DefaultOptions())
	if report.Grade == "F" {
	    fmt.Println("Major quality issues!")
	}

	// Selected dimensions only
	opts := datagrade.DefaultOptions()
	opts.Dimensions = datagrade.DimCompleteness | datagrade.DimUniqueness
	report, err := datagrade.Analyze(dataset, opts)

	// Custom thresholds
	opts := datagrade.DefaultOptions()
	opts.Completeness = datagrade.Thresholds{Pass: 99, Warn: 95}
	report, err := datagrade.Analyze(dataset, opts)

	// Reproducible timeliness scoring
	opts := datagrade.DefaultOptions()
	opts.AnalysisTime = snapshotTime
	report, err := datagrade.Analyze(dataset, opts)

	// Iterate dimension scores
	for _, dim := range report.Dimensions {
	    fmt.Printf("[%s] %s: %.1f (%s)\n", dim.Status, dim.Dimension, dim.Score, dim.Summary)
	}

	// Independent ML-readiness pass
	readiness, err := datagrade.AssessMLReadiness(dataset, opts)
	for _, rec := range readiness.Recommendations {
	    fmt.Println(rec)
	}
*/

// Dimension represents a data quality dimension of the DAMA taxonomy.
type Dimension int

const (
	DimCompleteness Dimension = 1 << iota
	DimUniqueness
	DimValidity
	DimConsistency
	DimAccuracy
	DimTimeliness

	// Presets.
	DimensionsAll = DimCompleteness | DimUniqueness | DimValidity |
		DimConsistency | DimAccuracy | DimTimeliness
)

func (d Dimension) String() string {
	switch d {
	case DimCompleteness:
		return "completeness"
	case DimUniqueness:
		return "uniqueness"
	case DimValidity:
		return "validity"
	case DimConsistency:
		return "consistency"
	case DimAccuracy:
		return "accuracy"
	case DimTimeliness:
		return "timeliness"
	}

	return "unknown"
}

// Status classifies a dimension score against its thresholds.
type Status int

const (
	StatusPass Status = iota
	StatusWarning
	StatusFail
	StatusNotApplicable
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarning:
		return "warning"
	case StatusFail:
		return "fail"
	case StatusNotApplicable:
		return "not applicable"
	}

	return "unknown"
}

// Thresholds defines the score bands for one dimension. Status is monotonic:
// a higher score never yields a worse status.
type Thresholds struct {
	Pass float64 // score at or above passes
	Warn float64 // score at or above is a warning; below fails
}

// Status returns the status for a score.
func (t Thresholds) Status(score float64) Status {
	if score >= t.Pass {
		return StatusPass
	}

	if score >= t.Warn {
		return StatusWarning
	}

	return StatusFail
}

// Weights holds the relative weight of each dimension in the overall score.
// Weight of not-applicable dimensions is redistributed proportionally.
type Weights struct {
	Completeness float64
	Uniqueness   float64
	Validity     float64
	Consistency  float64
	Accuracy     float64
	Timeliness   float64
}

// DefaultWeights returns the DAMA-style weighting: completeness and accuracy
// dominate, timeliness is context dependent.
func DefaultWeights() Weights {
	return Weights{
		Completeness: 0.25,
		Uniqueness:   0.15,
		Validity:     0.15,
		Consistency:  0.15,
		Accuracy:     0.20,
		Timeliness:   0.10,
	}
}

// Options configures the analysis.
type Options struct {
	Dimensions Dimension // which dimensions to score (default: DimensionsAll)

	// Score thresholds per dimension (zero value = use defaults).
	Completeness Thresholds
	Uniqueness   Thresholds
	Validity     Thresholds
	Consistency  Thresholds
	Accuracy     Thresholds
	Timeliness   Thresholds

	Weights Weights

	// AnalysisTime anchors timeliness scoring. Defaults to time.Now;
	// set it for reproducible reports over stored snapshots.
	AnalysisTime time.Time

	// ML-readiness cutoffs (zero value = use defaults).
	Readiness mlready.Options
}

// DefaultOptions returns thresholds calibrated for general tabular data.
func DefaultOptions() Options {
	return Options{
		Dimensions:   DimensionsAll,
		Completeness: Thresholds{Pass: 95, Warn: 80},
		Uniqueness:   Thresholds{Pass: 95, Warn: 90},
		Validity:     Thresholds{Pass: 90, Warn: 75},
		Consistency:  Thresholds{Pass: 85, Warn: 70},
		Accuracy:     Thresholds{Pass: 85, Warn: 70},
		Timeliness:   Thresholds{Pass: 80, Warn: 60},
		Weights:      DefaultWeights(),
		Readiness:    mlready.DefaultOptions(),
	}
}

var (
	ErrNoColumns = errors.New("dataset has no columns")
	ErrNoRows    = errors.New("dataset has no rows")
)

// Analyze runs the requested dimension scorers over one dataset snapshot and
// aggregates them into a graded quality report. It is a pure function of the
// dataset and options: no hidden state, no partial reports on error.
func Analyze(ds *types.Dataset, opts Options) (*Report, error) {
	if err := validateDataset(ds); err != nil {
		return nil, err
	}

	applyDefaults(&opts)

	profiles := profile.Columns(ds)

	report := &Report{
		Overview: buildOverview(ds, profiles),
		Profiles: profiles,
	}

	if opts.Dimensions&DimCompleteness != 0 {
		report.Completeness = completeness.Measure(ds, profiles)
	}

	if opts.Dimensions&DimUniqueness != 0 {
		report.Uniqueness = uniqueness.Measure(ds, profiles)
	}

	if opts.Dimensions&DimValidity != 0 {
		report.Validity = validity.Measure(ds, profiles)
	}

	if opts.Dimensions&DimConsistency != 0 {
		report.Consistency = consistency.Measure(ds, profiles)
	}

	if opts.Dimensions&DimAccuracy != 0 {
		report.Accuracy = accuracy.Measure(ds, profiles)
	}

	if opts.Dimensions&DimTimeliness != 0 {
		report.Timeliness = timeliness.Measure(ds, profiles, opts.AnalysisTime)
	}

	interpretResults(report, opts)

	return report, nil
}

// AssessMLReadiness runs the class-balance and correlation pass independently
// of the quality dimensions.
func AssessMLReadiness(ds *types.Dataset, opts Options) (*types.MLReadinessResult, error) {
	if err := validateDataset(ds); err != nil {
		return nil, err
	}

	applyDefaults(&opts)

	profiles := profile.Columns(ds)

	return mlready.Assess(ds, profiles, opts.Readiness), nil
}

func validateDataset(ds *types.Dataset) error {
	if ds == nil || ds.NumCols() == 0 {
		return ErrNoColumns
	}

	if ds.NumRows() == 0 {
		return ErrNoRows
	}

	return nil
}

func applyDefaults(opts *Options) {
	defaults := DefaultOptions()
	zero := Thresholds{}

	if opts.Dimensions == 0 {
		opts.Dimensions = DimensionsAll
	}

	if opts.Completeness == zero {
		opts.Completeness = defaults.Completeness
	}

	if opts.Uniqueness == zero {
		opts.Uniqueness = defaults.Uniqueness
	}

	if opts.Validity == zero {
		opts.Validity = defaults.Validity
	}

	if opts.Consistency == zero {
		opts.Consistency = defaults.Consistency
	}

	if opts.Accuracy == zero {
		opts.Accuracy = defaults.Accuracy
	}

	if opts.Timeliness == zero {
		opts.Timeliness = defaults.Timeliness
	}

	if opts.Weights == (Weights{}) {
		opts.Weights = defaults.Weights
	}

	if opts.AnalysisTime.IsZero() {
		opts.AnalysisTime = time.Now()
	}
}

// interpretResults turns raw scorer output into dimension scores and the
// aggregate grade.
func interpretResults(report *Report, opts Options) {
	if r := report.Completeness; r != nil {
		summary := "No missing cells"
		if r.NullCells > 0 {
			summary = fmt.Sprintf("%d of %d cells missing, %d columns below threshold",
				r.NullCells, r.TotalCells, r.ColumnsBelowThreshold)
		}

		addScore(report, DimensionScore{
			Dimension:   DimCompleteness,
			Score:       clampScore(r.Score),
			Status:      opts.Completeness.Status(r.Score),
			Description: "Measures extent to which required data is present",
			Summary:     summary,
			Weight:      opts.Weights.Completeness,
		})
	}

	if r := report.Uniqueness; r != nil {
		summary := "No duplicate rows"
		if r.DuplicateRows > 0 {
			summary = fmt.Sprintf("%d duplicate rows (%.1f%%)", r.DuplicateRows, r.DuplicatePct)
		}

		if len(r.CandidateKeys) > 0 {
			summary += fmt.Sprintf(", %d candidate key columns", len(r.CandidateKeys))
		}

		addScore(report, DimensionScore{
			Dimension:   DimUniqueness,
			Score:       clampScore(r.Score),
			Status:      opts.Uniqueness.Status(r.Score),
			Description: "Measures absence of duplicate records",
			Summary:     summary,
			Weight:      opts.Weights.Uniqueness,
		})
	}

	if r := report.Validity; r != nil {
		summary := fmt.Sprintf("%d of %d format checks passed", r.PassedChecks, r.TotalChecks)
		if r.TotalChecks == 0 {
			summary = "No applicable format checks"
		}

		addScore(report, DimensionScore{
			Dimension:   DimValidity,
			Score:       clampScore(r.Score),
			Status:      opts.Validity.Status(r.Score),
			Description: "Measures conformance to defined formats and rules",
			Summary:     summary,
			Weight:      opts.Weights.Validity,
		})
	}

	if r := report.Consistency; r != nil {
		summary := "No uniformity violations"
		if len(r.Issues) > 0 {
			summary = fmt.Sprintf("%d uniformity violations detected", len(r.Issues))
		}

		addScore(report, DimensionScore{
			Dimension:   DimConsistency,
			Score:       clampScore(r.Score),
			Status:      opts.Consistency.Status(r.Score),
			Description: "Measures uniformity and logical coherence across data",
			Summary:     summary,
			Weight:      opts.Weights.Consistency,
		})
	}

	if r := report.Accuracy; r != nil {
		outliers := 0
		for _, col := range r.Columns {
			outliers += col.OutlierCount
		}

		summary := "No outliers detected"
		if outliers > 0 {
			summary = fmt.Sprintf("%d outliers across %d numeric columns", outliers, len(r.Columns))
		}

		addScore(report, DimensionScore{
			Dimension:   DimAccuracy,
			Score:       clampScore(r.Score),
			Status:      opts.Accuracy.Status(r.Score),
			Description: "Measures correctness of data (proxy via outlier analysis)",
			Summary:     summary,
			Weight:      opts.Weights.Accuracy,
		})
	}

	if r := report.Timeliness; r != nil {
		score := DimensionScore{
			Dimension:   DimTimeliness,
			Score:       clampScore(r.Score),
			Status:      opts.Timeliness.Status(r.Score),
			Description: "Measures currency and freshness of data",
			Summary:     fmt.Sprintf("%d datetime columns analyzed", len(r.Columns)),
			Weight:      opts.Weights.Timeliness,
		}

		if !r.Applicable {
			score.Status = StatusNotApplicable
			score.Summary = "No datetime columns detected"
			score.Weight = 0
		}

		addScore(report, score)
	}

	aggregate(report)
}

func addScore(report *Report, score DimensionScore) {
	report.Dimensions = append(report.Dimensions, score)
}

// aggregate computes the weighted overall score, grade, and readiness status.
// Weight excluded for not-applicable dimensions is redistributed
// proportionally by dividing through the remaining weight sum.
func aggregate(report *Report) {
	var weightSum, weighted float64

	for _, dim := range report.Dimensions {
		if dim.Status == StatusNotApplicable {
			continue
		}

		weightSum += dim.Weight
		weighted += dim.Score * dim.Weight

		if dim.Status == StatusFail {
			report.FailedDimensions++
		}

		if dim.Status > report.WorstStatus {
			report.WorstStatus = dim.Status
		}
	}

	if weightSum > 0 {
		report.Overall = weighted / weightSum
	} else {
		// Every dimension was not applicable: no evidence of problems.
		report.Overall = 100
	}

	report.Grade, report.GradeDescription = gradeFor(report.Overall)
	report.MLReadinessStatus = readinessStatus(report.Overall, report.FailedDimensions)
}

func gradeFor(score float64) (string, string) {
	switch {
	case score >= 90:
		return "A", "Excellent - Production Ready"
	case score >= 80:
		return "B", "Good - Minor Improvements Needed"
	case score >= 70:
		return "C", "Fair - Several Issues to Address"
	case score >= 60:
		return "D", "Poor - Significant Work Required"
	default:
		return "F", "Failing - Major Quality Issues"
	}
}

// readinessStatus derives training readiness from the overall score, demoted
// by failing dimensions.
func readinessStatus(overall float64, failed int) ReadinessStatus {
	switch {
	case overall >= 80 && failed == 0:
		return ReadinessReady
	case overall >= 60 && failed <= 1:
		return ReadinessNeedsImprovement
	default:
		return ReadinessNotReady
	}
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}

	if score > 100 {
		return 100
	}

	return score
}

func buildOverview(ds *types.Dataset, profiles []types.ColumnProfile) Overview {
	overview := Overview{
		Rows:    ds.NumRows(),
		Columns: ds.NumCols(),
		Names:   ds.Columns,
	}

	for _, prof := range profiles {
		switch prof.Type {
		case types.TypeNumeric:
			overview.NumericColumns++
		case types.TypeCategorical:
			overview.CategoricalColumns++
		case types.TypeDatetime:
			overview.DatetimeColumns++
		case types.TypeText:
			overview.TextColumns++
		}
	}

	return overview
}
