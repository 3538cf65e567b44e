// Package sorting implements the stable multi-key sort over roster records.
package sorting

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"murshid/domain/filter"
	"murshid/domain/record"
)

const dateLayout = "2006-01-02"

// Apply orders students by the given spec and returns a new slice; the input
// is left untouched. Rules apply in priority order, the first rule being the
// primary key, and records equal under every rule keep their original
// relative order. When the caller supplies the same field twice only the
// first occurrence takes effect.
func Apply(students []record.Student, spec filter.Spec) []record.Student {
	out := make([]record.Student, len(students))
	copy(out, students)

	rules := dedupe(spec)
	if len(rules) == 0 {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, rule := range rules {
			c := compareByRule(out[i], out[j], rule)
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out
}

// dedupe keeps the first rule per field
func dedupe(spec filter.Spec) filter.Spec {
	seen := make(map[string]bool, len(spec))
	var rules filter.Spec
	for _, rule := range spec {
		if seen[rule.Field] {
			continue
		}
		seen[rule.Field] = true
		rules = append(rules, rule)
	}
	return rules
}

// compareByRule compares two records under one rule, returning a negative,
// zero or positive result; direction flips the sign.
func compareByRule(a, b record.Student, rule filter.SortRule) int {
	var c int
	switch rule.ValueType {
	case filter.TypeNumber:
		c = compareNumbers(a.Scalar(rule.Field), b.Scalar(rule.Field))
	case filter.TypeDate:
		c = compareDates(a.Scalar(rule.Field), b.Scalar(rule.Field))
	default:
		c = strings.Compare(a.Scalar(rule.Field), b.Scalar(rule.Field))
	}
	if rule.Direction == filter.Descending {
		return -c
	}
	return c
}

// compareNumbers orders by numeric value. Missing or unparseable values sort
// below every valid number and are equal amongst themselves, so stability
// keeps their original order.
func compareNumbers(a, b string) int {
	na, okA := parseNumber(a)
	nb, okB := parseNumber(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		return 0
	}
}

// compareDates orders by calendar date; invalid dates sort below valid ones
func compareDates(a, b string) int {
	ta, okA := parseDate(a)
	tb, okB := parseDate(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	case ta.Before(tb):
		return -1
	case tb.Before(ta):
		return 1
	default:
		return 0
	}
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	// ParseFloat accepts "NaN" and "Inf"; a NaN compares equal to everything
	// and would break comparator transitivity, so both count as unparseable
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
