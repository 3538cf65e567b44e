package narrative

import (
	"murshid/domain/core"
	"murshid/domain/report"
)

// MostImproved returns the comparison with the maximum signed difference.
// The scan is a left fold seeded with the first element, using a strict
// greater-than, so ties keep the first-encountered entry. An empty list is
// an explicit insufficient-data error, never a panic.
func MostImproved(comparisons []report.TermComparison) (report.TermComparison, error) {
	if len(comparisons) == 0 {
		return report.TermComparison{}, core.ErrNoComparisons
	}
	best := comparisons[0]
	for _, c := range comparisons[1:] {
		if c.Difference > best.Difference {
			best = c
		}
	}
	return best, nil
}

// MostDeclined returns the comparison with the minimum signed difference,
// under the same fold and tie rules as MostImproved.
func MostDeclined(comparisons []report.TermComparison) (report.TermComparison, error) {
	if len(comparisons) == 0 {
		return report.TermComparison{}, core.ErrNoComparisons
	}
	worst := comparisons[0]
	for _, c := range comparisons[1:] {
		if c.Difference < worst.Difference {
			worst = c
		}
	}
	return worst, nil
}
