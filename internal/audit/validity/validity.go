// Package validity applies per-type format checks: numeric plausibility,
// sign conventions implied by column names, and string format rules for
// email- and phone-like columns. Score is the share of passed checks.
package validity

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/datagrade/datagrade/internal/types"
)

//nolint:gochecknoglobals // configuration data, effectively const
var (
	// Column names where negative values are suspect.
	nonNegativeKeywords = []string{"age", "price", "amount", "quantity", "count", "size"}

	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

const minPhoneDigits = 10

// Measure runs all applicable checks and returns passed/failed tallies with
// per-column issues. A dataset with no applicable checks scores 100.
func Measure(ds *types.Dataset, profiles []types.ColumnProfile) *types.ValidityResult {
	result := &types.ValidityResult{}

	for _, prof := range profiles {
		if prof.NonNull == 0 {
			continue
		}

		var problems []string

		switch prof.Type {
		case types.TypeNumeric:
			problems = checkNumeric(&prof, result)
		case types.TypeCategorical, types.TypeText:
			problems = checkStrings(&prof, result)
		case types.TypeDatetime:
		}

		if len(problems) > 0 {
			severity := "medium"
			if len(problems) > 1 {
				severity = "high"
			}

			result.Issues = append(result.Issues, types.ValidityIssue{
				Column:   prof.Name,
				Type:     prof.Type,
				Problems: problems,
				Severity: severity,
			})
		}
	}

	result.FailedChecks = result.TotalChecks - result.PassedChecks

	result.Score = 100
	if result.TotalChecks > 0 {
		result.Score = float64(result.PassedChecks) / float64(result.TotalChecks) * 100
	}

	return result
}

func checkNumeric(prof *types.ColumnProfile, result *types.ValidityResult) []string {
	var problems []string

	// Non-finite values.
	result.TotalChecks++

	infinite := 0

	if prof.Numeric != nil {
		for _, v := range prof.Numeric.Values {
			if math.IsInf(v, 0) || math.IsNaN(v) {
				infinite++
			}
		}
	}

	if infinite > 0 {
		problems = append(problems, fmt.Sprintf("%d non-finite values detected", infinite))
	} else {
		result.PassedChecks++
	}

	// Negative values in columns that should not have them.
	result.TotalChecks++

	if hasKeyword(prof.Name, nonNegativeKeywords) && prof.Numeric != nil {
		negatives := 0

		for _, v := range prof.Numeric.Values {
			if v < 0 {
				negatives++
			}
		}

		if negatives > 0 {
			problems = append(problems, fmt.Sprintf("%d unexpected negative values", negatives))
		} else {
			result.PassedChecks++
		}
	} else {
		result.PassedChecks++
	}

	return problems
}

func checkStrings(prof *types.ColumnProfile, result *types.ValidityResult) []string {
	var problems []string

	// Whitespace-only values.
	result.TotalChecks++

	whitespace := 0

	for value, count := range prof.Counts {
		if strings.TrimSpace(value) == "" {
			whitespace += count
		}
	}

	if whitespace > 0 {
		problems = append(problems, fmt.Sprintf("%d whitespace-only values", whitespace))
	} else {
		result.PassedChecks++
	}

	name := strings.ToLower(prof.Name)

	if strings.Contains(name, "email") {
		result.TotalChecks++

		invalid := 0

		for value, count := range prof.Counts {
			if !emailPattern.MatchString(value) {
				invalid += count
			}
		}

		if invalid > 0 {
			problems = append(problems, fmt.Sprintf("%d invalid email formats", invalid))
		} else {
			result.PassedChecks++
		}
	}

	if strings.Contains(name, "phone") || strings.Contains(name, "mobile") {
		result.TotalChecks++

		invalid := 0

		for value, count := range prof.Counts {
			if digitCount(value) < minPhoneDigits {
				invalid += count
			}
		}

		if invalid > 0 {
			problems = append(problems, fmt.Sprintf("%d potentially invalid phone numbers", invalid))
		} else {
			result.PassedChecks++
		}
	}

	return problems
}

func hasKeyword(name string, keywords []string) bool {
	name = strings.ToLower(name)

	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}

	return false
}

func digitCount(s string) int {
	digits := 0

	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}

	return digits
}
