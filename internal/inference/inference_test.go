package inference

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"murshid/domain/filter"
	"murshid/domain/record"
)

func column(field string, values ...string) []record.Student {
	students := make([]record.Student, 0, len(values))
	for _, v := range values {
		students = append(students, record.FromRaw(map[string]interface{}{field: v}))
	}
	return students
}

func TestColumnType(t *testing.T) {
	const field = "عمود"

	tests := []struct {
		name   string
		values []string
		want   filter.ValueType
	}{
		{"all numeric", []string{"12", "9.5", "17.25"}, filter.TypeNumber},
		{"mixed text", []string{"12", "غائب", "9"}, filter.TypeString},
		{"plain text", []string{"وهران", "قسنطينة"}, filter.TypeString},
		{"iso dates", []string{"2010-03-15", "2011-11-02"}, filter.TypeDate},
		{"no samples", nil, filter.TypeString},
		{"only empties", []string{"", "   "}, filter.TypeString},
		{"nan is not a number", []string{"NaN", "Inf"}, filter.TypeString},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ColumnType(column(field, tc.values...), field))
		})
	}
}

// A single date-shaped sample wins even when every other sample parses as a
// number.
func TestColumnTypeDatePrecedence(t *testing.T) {
	const field = "عمود"
	students := column(field, "12", "14.5", "2010-03-15", "9")
	assert.Equal(t, filter.TypeDate, ColumnType(students, field))
}

// Inspection stops after ten non-empty samples, so a date appearing later in
// the column cannot flip the classification.
func TestColumnTypeSampleCap(t *testing.T) {
	const field = "عمود"
	values := make([]string, 0, 11)
	for i := 0; i < 10; i++ {
		values = append(values, strconv.Itoa(i))
	}
	values = append(values, "2010-03-15")
	assert.Equal(t, filter.TypeNumber, ColumnType(column(field, values...), field))
}

func TestColumnTypeSkipsEmpties(t *testing.T) {
	const field = "عمود"
	students := column(field, "", "  ", "12", "9")
	assert.Equal(t, filter.TypeNumber, ColumnType(students, field))
}

func TestColumnTypes(t *testing.T) {
	students := []record.Student{
		record.FromRaw(map[string]interface{}{
			"معدل": "12.5", "تاريخ": "2010-01-01", "اسم": "أحمد",
		}),
	}
	types := ColumnTypes(students, []string{"معدل", "تاريخ", "اسم"})
	assert.Equal(t, filter.TypeNumber, types["معدل"])
	assert.Equal(t, filter.TypeDate, types["تاريخ"])
	assert.Equal(t, filter.TypeString, types["اسم"])
}

func TestDefaultRule(t *testing.T) {
	const field = "معدل الفصل الأول"
	rule := DefaultRule(column(field, "11.5", "9"), field, filter.Descending)
	assert.Equal(t, filter.SortRule{
		Field:     field,
		ValueType: filter.TypeNumber,
		Direction: filter.Descending,
	}, rule)
}
