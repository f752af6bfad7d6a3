// Package output provides shared result serialization for datagrade JSON
// output.
package output

import (
	"time"

	"github.com/datagrade/datagrade"
	"github.com/datagrade/datagrade/internal/types"
)

// ReportToMap converts a quality report into the canonical map structure
// used for JSON and JSONL serialization.
func ReportToMap(report *datagrade.Report) map[string]any {
	meta := map[string]any{
		"overview": map[string]any{
			"rows":                report.Overview.Rows,
			"columns":             report.Overview.Columns,
			"numeric_columns":     report.Overview.NumericColumns,
			"categorical_columns": report.Overview.CategoricalColumns,
			"datetime_columns":    report.Overview.DatetimeColumns,
			"text_columns":        report.Overview.TextColumns,
			"column_names":        report.Overview.Names,
		},
		"summary": map[string]any{
			"overall_score":       report.Overall,
			"grade":               report.Grade,
			"grade_description":   report.GradeDescription,
			"ml_readiness_status": report.MLReadinessStatus.String(),
			"failed_dimensions":   report.FailedDimensions,
			"worst_status":        report.WorstStatus.String(),
		},
	}

	// Dimension scores.
	dims := make([]any, 0, len(report.Dimensions))
	for _, dim := range report.Dimensions {
		dims = append(dims, map[string]any{
			"dimension":   dim.Dimension.String(),
			"score":       dim.Score,
			"status":      dim.Status.String(),
			"description": dim.Description,
			"summary":     dim.Summary,
			"weight":      dim.Weight,
		})
	}

	meta["dimensions"] = dims

	// Raw scorer results.
	if r := report.Completeness; r != nil {
		meta["completeness"] = CompletenessToMap(r)
	}

	if r := report.Uniqueness; r != nil {
		meta["uniqueness"] = UniquenessToMap(r)
	}

	if r := report.Validity; r != nil {
		meta["validity"] = ValidityToMap(r)
	}

	if r := report.Consistency; r != nil {
		meta["consistency"] = ConsistencyToMap(r)
	}

	if r := report.Accuracy; r != nil {
		meta["accuracy"] = AccuracyToMap(r)
	}

	if r := report.Timeliness; r != nil {
		meta["timeliness"] = TimelinessToMap(r)
	}

	if len(report.Profiles) > 0 {
		meta["column_profiles"] = ProfilesToMaps(report.Profiles)
	}

	return meta
}

// CompletenessToMap converts completeness results to a map.
func CompletenessToMap(result *types.CompletenessResult) map[string]any {
	columns := make([]any, 0, len(result.Columns))
	for _, col := range result.Columns {
		columns = append(columns, map[string]any{
			"column":             col.Column,
			"non_null_count":     col.NonNull,
			"null_count":         col.Nulls,
			"completeness_ratio": col.Ratio,
			"status":             col.Status,
		})
	}

	return map[string]any{
		"score":                   result.Score,
		"total_cells":             result.TotalCells,
		"non_null_cells":          result.NonNullCells,
		"null_cells":              result.NullCells,
		"columns_below_threshold": result.ColumnsBelowThreshold,
		"column_details":          columns,
	}
}

// UniquenessToMap converts duplicate-row results to a map.
func UniquenessToMap(result *types.UniquenessResult) map[string]any {
	columns := make([]any, 0, len(result.Columns))
	for _, col := range result.Columns {
		columns = append(columns, map[string]any{
			"column":            col.Column,
			"unique_values":     col.DistinctValues,
			"cardinality_ratio": col.CardinalityRatio,
			"is_potential_key":  col.IsCandidateKey,
		})
	}

	return map[string]any{
		"score":                 result.Score,
		"total_rows":            result.TotalRows,
		"unique_rows":           result.UniqueRows,
		"duplicate_rows":        result.DuplicateRows,
		"duplicate_percentage":  result.DuplicatePct,
		"column_cardinality":    columns,
		"potential_key_columns": result.CandidateKeys,
	}
}

// ValidityToMap converts format-check results to a map.
func ValidityToMap(result *types.ValidityResult) map[string]any {
	issues := make([]any, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, map[string]any{
			"column":   issue.Column,
			"dtype":    issue.Type.String(),
			"issues":   issue.Problems,
			"severity": issue.Severity,
		})
	}

	return map[string]any{
		"score":         result.Score,
		"total_checks":  result.TotalChecks,
		"passed_checks": result.PassedChecks,
		"failed_checks": result.FailedChecks,
		"issues":        issues,
	}
}

// ConsistencyToMap converts uniformity results to a map.
func ConsistencyToMap(result *types.ConsistencyResult) map[string]any {
	issues := make([]any, 0, len(result.Issues))
	for _, issue := range result.Issues {
		issues = append(issues, map[string]any{
			"column":      issue.Column,
			"issue":       issue.Issue,
			"description": issue.Description,
			"impact":      -issue.Impact,
		})
	}

	return map[string]any{
		"score":        result.Score,
		"issues_found": len(result.Issues),
		"issues":       issues,
	}
}

// AccuracyToMap converts outlier analysis results to a map.
func AccuracyToMap(result *types.AccuracyResult) map[string]any {
	columns := make([]any, 0, len(result.Columns))
	for _, col := range result.Columns {
		columns = append(columns, map[string]any{
			"column":             col.Column,
			"outlier_count":      col.OutlierCount,
			"outlier_percentage": col.OutlierPct,
			"lower_bound":        col.LowerBound,
			"upper_bound":        col.UpperBound,
			"mean":               col.Mean,
			"median":             col.Median,
			"std":                col.Std,
			"skewness":           col.Skewness,
			"status":             col.Status,
		})
	}

	return map[string]any{
		"score":            result.Score,
		"outlier_analysis": columns,
	}
}

// TimelinessToMap converts freshness results to a map.
func TimelinessToMap(result *types.TimelinessResult) map[string]any {
	meta := map[string]any{
		"applicable": result.Applicable,
		"score":      result.Score,
	}

	if !result.Applicable {
		meta["note"] = "No datetime columns detected"

		return meta
	}

	columns := make([]any, 0, len(result.Columns))
	for _, col := range result.Columns {
		columns = append(columns, map[string]any{
			"column":            col.Column,
			"earliest_date":     col.Earliest.Format(time.DateOnly),
			"latest_date":       col.Latest.Format(time.DateOnly),
			"days_since_latest": col.DaysSinceLatest,
			"timespan_days":     col.TimespanDays,
			"freshness":         col.Freshness,
		})
	}

	meta["analysis"] = columns

	return meta
}

// ReadinessToMap converts an ML-readiness assessment to a map.
func ReadinessToMap(result *types.MLReadinessResult) map[string]any {
	correlations := make([]any, 0, len(result.Correlations))
	for _, pair := range result.Correlations {
		correlations = append(correlations, map[string]any{
			"column1":     pair.Column1,
			"column2":     pair.Column2,
			"correlation": pair.Correlation,
			"risk":        pair.Risk,
		})
	}

	balance := make([]any, 0, len(result.ClassBalance))
	for _, cb := range result.ClassBalance {
		balance = append(balance, map[string]any{
			"column":             cb.Column,
			"num_classes":        cb.Classes,
			"imbalance_ratio":    cb.ImbalanceRatio,
			"majority_class_pct": cb.MajorityPct,
			"minority_class_pct": cb.MinorityPct,
			"status":             cb.Status,
		})
	}

	variance := make([]any, 0, len(result.LowVariance))
	for _, lv := range result.LowVariance {
		variance = append(variance, map[string]any{
			"column":   lv.Column,
			"variance": lv.Variance,
		})
	}

	return map[string]any{
		"score":                 result.Score,
		"status":                result.Status,
		"high_correlations":     correlations,
		"class_balance":         balance,
		"low_variance_features": variance,
		"recommendations":       result.Recommendations,
	}
}

// ProfilesToMaps converts column profiles to their map form.
func ProfilesToMaps(profiles []types.ColumnProfile) []any {
	out := make([]any, 0, len(profiles))

	for _, prof := range profiles {
		entry := map[string]any{
			"name":           prof.Name,
			"type":           prof.Type.String(),
			"non_null_count": prof.NonNull,
			"null_count":     prof.Nulls,
			"distinct_count": prof.Distinct,
		}

		if s := prof.Numeric; s != nil {
			entry["stats"] = map[string]any{
				"mean":     s.Mean,
				"std":      s.Std,
				"min":      s.Min,
				"max":      s.Max,
				"median":   s.Median,
				"q1":       s.Q1,
				"q3":       s.Q3,
				"skewness": s.Skewness,
			}
		}

		if len(prof.TopValues) > 0 {
			top := make([]any, 0, len(prof.TopValues))
			for _, vc := range prof.TopValues {
				top = append(top, map[string]any{
					"value": vc.Value,
					"count": vc.Count,
				})
			}

			entry["value_distribution"] = top
		}

		if tr := prof.Times; tr != nil {
			entry["time_range"] = map[string]any{
				"min": tr.Min.Format(time.RFC3339),
				"max": tr.Max.Format(time.RFC3339),
			}
		}

		out = append(out, entry)
	}

	return out
}
