package shared

const (
	// IQR fence multipliers. OutlierFence marks ordinary outliers for the
	// accuracy scorer; ExtremeFence marks likely entry errors for the
	// consistency scorer.
	OutlierFence = 1.5
	ExtremeFence = 3.0

	// MinOutlierSample is the minimum non-null count a numeric column needs
	// before outlier analysis is meaningful.
	MinOutlierSample = 10

	// CandidateKeyCardinality is the distinct/non-null ratio above which a
	// fully populated column is flagged as a potential key.
	CandidateKeyCardinality = 0.95
)

// DateKeywords mark column names that likely hold timestamps even when the
// values did not profile as datetime.
//
//nolint:gochecknoglobals // configuration data, effectively const
var DateKeywords = []string{"date", "time", "timestamp", "created", "updated"}
