// Package analysis computes the aggregate statistics behind the counselor
// reports: category partitions over the roster and per-subject grade
// statistics, optionally compared across two terms.
//
// Everything here is a pure function over a snapshot; classification into
// prose bands belongs to the narrative generator, not to this package.
package analysis

import (
	"strconv"
	"strings"

	"murshid/domain/record"
	"murshid/domain/report"
)

// Categorize partitions the roster by a scalar field over a fixed category
// set. Records whose answer is not one of the categories (or is missing) are
// not counted, so the partition invariant holds: counts sum to Total and each
// Percentage equals 100*Count/Total, 0 when Total is 0.
func Categorize(students []record.Student, field string, categories []string) report.Partition {
	counts := make(map[string]int, len(categories))
	total := 0
	for _, s := range students {
		answer := s.Scalar(field)
		for _, cat := range categories {
			if answer == cat {
				counts[cat]++
				total++
				break
			}
		}
	}

	entries := make(map[string]report.CategoryEntry, len(categories))
	order := make([]string, len(categories))
	copy(order, categories)
	for _, cat := range categories {
		entries[cat] = report.CategoryEntry{
			Count:      counts[cat],
			Percentage: Percentage(counts[cat], total),
			Total:      total,
		}
	}

	return report.Partition{
		Field:   field,
		Total:   total,
		Order:   order,
		Entries: entries,
	}
}

// MultiBreakdown counts how often each option of a multi-select field was
// chosen. One student may contribute to several options, so this is a
// breakdown and not a partition: Total is the number of students who answered
// the field at all, and counts need not sum to it.
func MultiBreakdown(students []record.Student, field string, options []string) report.Partition {
	counts := make(map[string]int, len(options))
	answered := 0
	for _, s := range students {
		if !s.Answered(field) {
			continue
		}
		answered++
		for _, opt := range options {
			if s[field].Contains(opt) {
				counts[opt]++
			}
		}
	}

	entries := make(map[string]report.CategoryEntry, len(options))
	order := make([]string, len(options))
	copy(order, options)
	for _, opt := range options {
		entries[opt] = report.CategoryEntry{
			Count:      counts[opt],
			Percentage: Percentage(counts[opt], answered),
			Total:      answered,
		}
	}

	return report.Partition{
		Field:   field,
		Total:   answered,
		Order:   order,
		Entries: entries,
	}
}

// Percentage computes 100*count/total, defined as 0 when total is 0 so a
// zero-total partition never yields NaN or Infinity.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}

// ParsePercent parses a percentage that may arrive as imported text, with or
// without a trailing percent sign.
func ParsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// NumericColumn extracts the parseable numeric answers of a field, in roster
// order. Missing and malformed answers are skipped, never an error.
func NumericColumn(students []record.Student, field string) []float64 {
	var out []float64
	for _, s := range students {
		if n, ok := s.Number(field); ok {
			out = append(out, n)
		}
	}
	return out
}
