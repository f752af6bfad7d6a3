package datagrade

import (
	"context"

	"github.com/datagrade/datagrade/internal/types"
)

// ReadinessStatus summarizes whether a dataset is fit for model training.
type ReadinessStatus int

const (
	ReadinessNotReady ReadinessStatus = iota
	ReadinessNeedsImprovement
	ReadinessReady
)

func (s ReadinessStatus) String() string {
	switch s {
	case ReadinessReady:
		return "ready"
	case ReadinessNeedsImprovement:
		return "needs_improvement"
	case ReadinessNotReady:
		return "not_ready"
	}

	return "unknown"
}

// Overview contains basic dataset shape statistics.
type Overview struct {
	Rows               int      `json:"rows"`
	Columns            int      `json:"columns"`
	NumericColumns     int      `json:"numeric_columns"`
	CategoricalColumns int      `json:"categorical_columns"`
	DatetimeColumns    int      `json:"datetime_columns"`
	TextColumns        int      `json:"text_columns"`
	Names              []string `json:"column_names"`
}

// DimensionScore is the graded outcome of one quality dimension.
// Score is always within [0,100]; Status is a monotonic function of Score.
type DimensionScore struct {
	Dimension   Dimension
	Score       float64
	Status      Status
	Description string // what the dimension measures
	Summary     string // human-readable findings
	Weight      float64
}

// Report contains all analysis results for one dataset snapshot. It is built
// once per Analyze call and not mutated afterwards; callers own it outright.
type Report struct {
	Overview Overview

	// Graded dimensions, in scorer order.
	Dimensions []DimensionScore

	// Aggregate.
	Overall           float64
	Grade             string
	GradeDescription  string
	MLReadinessStatus ReadinessStatus
	FailedDimensions  int
	WorstStatus       Status

	// Raw scorer results (nil if the dimension was not requested).
	Completeness *types.CompletenessResult
	Uniqueness   *types.UniquenessResult
	Validity     *types.ValidityResult
	Consistency  *types.ConsistencyResult
	Accuracy     *types.AccuracyResult
	Timeliness   *types.TimelinessResult

	Profiles []types.ColumnProfile
}

// FixSuggestion is a remediation hint for one reported finding.
type FixSuggestion struct {
	Column     string
	Issue      string
	Suggestion string
}

// SuggestionProvider produces remediation suggestions for a finished report.
// Implementations live outside this module (an LLM-backed service, a rule
// engine); the core only consumes the interface.
type SuggestionProvider interface {
	Suggestions(ctx context.Context, report *Report) ([]FixSuggestion, error)
}
