//nolint:tagliatelle
package main

// Record is a single line in the JSONL report file.
type Record struct {
	File   string         `json:"file,omitempty"`
	Report map[string]any `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
	Timing *RecordTiming  `json:"timing,omitempty"`
}

// RecordTiming captures per-file processing durations in milliseconds.
type RecordTiming struct {
	LoadMs    float64 `json:"load_ms"`
	AnalyzeMs float64 `json:"analyze_ms"`
	TotalMs   float64 `json:"total_ms"`
}

// digestRecord holds the typed fields needed by the digest command.
type digestRecord struct {
	File   string        `json:"file,omitempty"`
	Report *digestReport `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

type digestReport struct {
	Summary    digestSummary     `json:"summary"`
	Dimensions []digestDimension `json:"dimensions"`
}

type digestSummary struct {
	OverallScore      float64 `json:"overall_score"`
	Grade             string  `json:"grade"`
	MLReadinessStatus string  `json:"ml_readiness_status"`
	FailedDimensions  int     `json:"failed_dimensions"`
}

type digestDimension struct {
	Dimension string  `json:"dimension"`
	Score     float64 `json:"score"`
	Status    string  `json:"status"`
	Summary   string  `json:"summary"`
}

// dimensionBreakdown tracks per-dimension status counts for the digest.
type dimensionBreakdown struct {
	Dimension string
	Total     int
	Fail      int
	Warning   int
	Pass      int
}
