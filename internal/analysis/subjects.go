package analysis

import (
	"sort"

	"github.com/montanaflynn/stats"
	gostat "gonum.org/v1/gonum/stat"

	"murshid/domain/report"
)

// PassGrade is the pass threshold on the 0-20 grade scale
const PassGrade = 10.0

// MeasurePassRate and MeasureMean select which per-term value a comparison
// entry carries in ValueA/ValueB.
const (
	MeasurePassRate = "pass_rate"
	MeasureMean     = "mean"
)

// SubjectStats computes the raw statistics of one subject for one term:
// mean, population standard deviation, quartiles, pass rate and the grade
// band partition. An empty grade array yields a zero-valued result with
// Count 0; it never errors.
func SubjectStats(subject string, grades []float64) report.SubjectStats {
	out := report.SubjectStats{
		Subject: subject,
		Count:   len(grades),
		Bands:   bandPartition(grades),
	}
	if len(grades) == 0 {
		return out
	}

	// montanaflynn errors only on empty input, which is guarded above
	out.Mean, _ = stats.Mean(grades)
	out.StdDev, _ = stats.StandardDeviationPopulation(grades)

	sorted := make([]float64, len(grades))
	copy(sorted, grades)
	sort.Float64s(sorted)
	out.Q1 = gostat.Quantile(0.25, gostat.Empirical, sorted, nil)
	out.Median = gostat.Quantile(0.5, gostat.Empirical, sorted, nil)
	out.Q3 = gostat.Quantile(0.75, gostat.Empirical, sorted, nil)

	passed := 0
	for _, g := range grades {
		if g >= PassGrade {
			passed++
		}
	}
	out.PassRate = Percentage(passed, len(grades))

	return out
}

// bandPartition buckets grades into merit bands. Unlike Categorize this
// works on numbers, but the same invariant holds: band counts sum to Total.
func bandPartition(grades []float64) map[report.GradeBand]report.CategoryEntry {
	counts := make(map[report.GradeBand]int, len(report.GradeBands))
	for _, g := range grades {
		counts[report.ClassifyGrade(g)]++
	}
	entries := make(map[report.GradeBand]report.CategoryEntry, len(report.GradeBands))
	for _, band := range report.GradeBands {
		entries[band] = report.CategoryEntry{
			Count:      counts[band],
			Percentage: Percentage(counts[band], len(grades)),
			Total:      len(grades),
		}
	}
	return entries
}

// CompareTerms pairs two term snapshots of one subject. The signed
// Difference is always term B minus term A of the selected measure.
func CompareTerms(subject string, termA, termB []float64, measure string) report.TermComparison {
	statsA := SubjectStats(subject, termA)
	statsB := SubjectStats(subject, termB)

	valueA, valueB := statsA.PassRate, statsB.PassRate
	if measure == MeasureMean {
		valueA, valueB = statsA.Mean, statsB.Mean
	}

	diff := valueB - valueA
	return report.TermComparison{
		Subject:    subject,
		TermA:      statsA,
		TermB:      statsB,
		Measure:    measure,
		ValueA:     valueA,
		ValueB:     valueB,
		Difference: diff,
		Remark:     ClassifyRemark(diff),
	}
}

// CompareValues builds a comparison entry from already-aggregated per-term
// values, as delivered by imported result sheets that carry percentages
// instead of raw grades.
func CompareValues(subject string, valueA, valueB float64, measure string) report.TermComparison {
	diff := valueB - valueA
	return report.TermComparison{
		Subject:    subject,
		Measure:    measure,
		ValueA:     valueA,
		ValueB:     valueB,
		Difference: diff,
		Remark:     ClassifyRemark(diff),
	}
}

// ClassifyRemark maps a signed difference to its styling label. Lower bounds
// are inclusive, mirroring the narrative magnitude bands.
func ClassifyRemark(difference float64) report.Remark {
	switch {
	case difference >= 5:
		return report.RemarkSuccess
	case difference <= -5:
		return report.RemarkDanger
	case difference != 0:
		return report.RemarkInfo
	default:
		return report.RemarkSecondary
	}
}
