package types

import "time"

// ColumnType is the single inferred type of a column.
type ColumnType uint8

const (
	TypeText ColumnType = iota
	TypeNumeric
	TypeCategorical
	TypeDatetime
)

func (t ColumnType) String() string {
	switch t {
	case TypeNumeric:
		return "numeric"
	case TypeCategorical:
		return "categorical"
	case TypeDatetime:
		return "datetime"
	case TypeText:
		return "text"
	}

	return "unknown"
}

// NumericStats summarizes the numeric values of a column.
type NumericStats struct {
	Mean     float64
	Std      float64
	Variance float64
	Min      float64
	Max      float64
	Median   float64
	Q1       float64
	Q3       float64
	Skewness float64

	// Values holds the non-null numeric values sorted ascending. Owned by
	// the analysis run that produced the profile; never mutated after.
	Values []float64
}

// ValueCount is one entry of a categorical top-value distribution.
type ValueCount struct {
	Value string
	Count int
}

// TimeRange summarizes the timestamps of a datetime column.
type TimeRange struct {
	Min   time.Time
	Max   time.Time
	Count int
}

// ColumnProfile is the per-column derivation consumed by every scorer.
// NonNull + Nulls always equals the dataset row count.
type ColumnProfile struct {
	Name     string
	Type     ColumnType
	NonNull  int
	Nulls    int
	Distinct int

	Numeric *NumericStats // nil unless numeric values were seen

	// Counts maps display value to occurrence count for categorical and
	// text columns; nil for numeric and datetime columns.
	Counts    map[string]int
	TopValues []ValueCount

	Times *TimeRange // nil unless timestamps were seen
}

// ColumnCompleteness is one per-column completeness entry.
type ColumnCompleteness struct {
	Column  string
	NonNull int
	Nulls   int
	Ratio   float64 // percent, 0-100
	Status  string  // pass, warning, fail
}

// CompletenessResult contains completeness measurement results.
type CompletenessResult struct {
	Score                 float64
	TotalCells            int
	NonNullCells          int
	NullCells             int
	ColumnsBelowThreshold int
	Columns               []ColumnCompleteness // sorted worst first
}

// ColumnCardinality is one per-column uniqueness entry.
type ColumnCardinality struct {
	Column           string
	DistinctValues   int
	CardinalityRatio float64 // percent, 0-100
	IsCandidateKey   bool
}

// UniquenessResult contains duplicate-row measurement results.
// DuplicateRows + UniqueRows == TotalRows for all inputs.
type UniquenessResult struct {
	Score         float64
	TotalRows     int
	UniqueRows    int
	DuplicateRows int
	DuplicatePct  float64
	Columns       []ColumnCardinality
	CandidateKeys []string
}

// ValidityIssue describes the failed format checks of one column.
type ValidityIssue struct {
	Column   string
	Type     ColumnType
	Problems []string
	Severity string // high, medium
}

// ValidityResult contains format-check results.
type ValidityResult struct {
	Score        float64
	TotalChecks  int
	PassedChecks int
	FailedChecks int
	Issues       []ValidityIssue
}

// ConsistencyIssue is one detected uniformity violation.
type ConsistencyIssue struct {
	Column      string
	Issue       string
	Description string
	Impact      float64 // points deducted from 100
}

// ConsistencyResult contains uniformity measurement results.
type ConsistencyResult struct {
	Score  float64
	Issues []ConsistencyIssue
}

// OutlierStats is the per-column outlier analysis of the accuracy scorer.
type OutlierStats struct {
	Column       string
	OutlierCount int
	OutlierPct   float64
	LowerBound   float64
	UpperBound   float64
	Mean         float64
	Median       float64
	Std          float64
	Skewness     float64
	Status       string // pass, warning, fail
}

// AccuracyResult contains outlier-based accuracy proxy results.
type AccuracyResult struct {
	Score   float64
	Columns []OutlierStats
}

// RecencyStats is the per-column analysis of the timeliness scorer.
type RecencyStats struct {
	Column          string
	Earliest        time.Time
	Latest          time.Time
	DaysSinceLatest int
	TimespanDays    int
	Freshness       string // current, recent, stale
}

// TimelinessResult contains data-freshness measurement results.
// Applicable is false when the dataset has no datetime columns; Score is
// then neutral and the dimension is excluded from weighting.
type TimelinessResult struct {
	Applicable bool
	Score      float64
	Columns    []RecencyStats
}

// CorrelatedPair is a numeric column pair with |r| above threshold.
type CorrelatedPair struct {
	Column1     string
	Column2     string
	Correlation float64
	Risk        string // multicollinearity, high_correlation
}

// ClassBalance describes class frequencies of one candidate target column.
type ClassBalance struct {
	Column         string
	Classes        int
	ImbalanceRatio float64
	MajorityPct    float64
	MinorityPct    float64
	Status         string // balanced, imbalanced, severely_imbalanced
}

// LowVarianceFeature flags a near-constant numeric column.
type LowVarianceFeature struct {
	Column   string
	Variance float64
}

// MLReadinessResult contains the ML-readiness assessment. It is derived
// independently from the quality dimensions and merged at presentation only.
type MLReadinessResult struct {
	Score           float64
	Status          string // ready, needs_improvement, not_ready
	Correlations    []CorrelatedPair
	ClassBalance    []ClassBalance
	LowVariance     []LowVarianceFeature
	Recommendations []string
}
