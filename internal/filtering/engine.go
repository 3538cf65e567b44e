// Package filtering implements the roster filter engine: a pure, stable
// subset operation over an in-memory snapshot.
package filtering

import (
	"murshid/domain/filter"
	"murshid/domain/record"
)

// Apply returns the students matching every active field constraint, in
// their original relative order. Matching is AND across fields and OR within
// one field's accepted list; multi-select answers match by intersection.
//
// The input slice is never mutated; the result is a fresh slice sharing the
// record values.
func Apply(students []record.Student, criteria filter.Criteria) []record.Student {
	if criteria.IsEmpty() {
		out := make([]record.Student, len(students))
		copy(out, students)
		return out
	}

	out := make([]record.Student, 0, len(students))
	for _, s := range students {
		if Matches(s, criteria) {
			out = append(out, s)
		}
	}
	return out
}

// Matches reports whether one student passes every active field constraint.
// A record missing a constrained field fails that constraint.
func Matches(s record.Student, criteria filter.Criteria) bool {
	for field, accepted := range criteria {
		if len(accepted) == 0 {
			continue
		}
		v, ok := s.Get(field)
		if !ok || v.IsEmpty() {
			return false
		}
		if !v.Intersects(accepted) {
			return false
		}
	}
	return true
}

// Count returns the number of matching students without materializing them
func Count(students []record.Student, criteria filter.Criteria) int {
	n := 0
	for _, s := range students {
		if Matches(s, criteria) {
			n++
		}
	}
	return n
}

// DistinctValues collects the distinct answer options of a field across the
// roster, in first-seen order. The filter panel uses this to offer choices.
func DistinctValues(students []record.Student, field string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range students {
		for _, option := range s.List(field) {
			if !seen[option] {
				seen[option] = true
				out = append(out, option)
			}
		}
	}
	return out
}
