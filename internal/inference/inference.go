// Package inference classifies roster columns for sorting. The result seeds
// the default sort-rule type; users may override it from the sort panel.
package inference

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"murshid/domain/filter"
	"murshid/domain/record"
)

// maxSamples bounds the per-column scan; ten non-empty values are enough to
// pick a default without touching the whole roster.
const maxSamples = 10

var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ColumnType inspects up to maxSamples non-empty values of a field across the
// roster and classifies it as string, number or date.
//
// Any sample matching the ISO date pattern forces the date classification,
// even when every sample would also parse as a number. A column with no
// non-empty samples is a string column.
func ColumnType(students []record.Student, field string) filter.ValueType {
	samples := sampleValues(students, field)
	if len(samples) == 0 {
		return filter.TypeString
	}

	allNumeric := true
	for _, s := range samples {
		if isoDatePattern.MatchString(s) {
			return filter.TypeDate
		}
		if !parsesAsNumber(s) {
			allNumeric = false
		}
	}

	if allNumeric {
		return filter.TypeNumber
	}
	return filter.TypeString
}

// ColumnTypes classifies every named field in one pass over the roster
func ColumnTypes(students []record.Student, fields []string) map[string]filter.ValueType {
	types := make(map[string]filter.ValueType, len(fields))
	for _, field := range fields {
		types[field] = ColumnType(students, field)
	}
	return types
}

// DefaultRule builds a sort rule seeded with the inferred column type
func DefaultRule(students []record.Student, field string, direction filter.Direction) filter.SortRule {
	return filter.SortRule{
		Field:     field,
		ValueType: ColumnType(students, field),
		Direction: direction,
	}
}

func sampleValues(students []record.Student, field string) []string {
	var samples []string
	for _, s := range students {
		v, ok := s.Get(field)
		if !ok || v.IsEmpty() {
			continue
		}
		samples = append(samples, strings.TrimSpace(v.String()))
		if len(samples) >= maxSamples {
			break
		}
	}
	return samples
}

func parsesAsNumber(s string) bool {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return false
	}
	// ParseFloat accepts "Inf" and "NaN"; neither is a sortable number
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
