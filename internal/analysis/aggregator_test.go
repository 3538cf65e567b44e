package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"murshid/domain/record"
)

func roster(genders ...string) []record.Student {
	out := make([]record.Student, 0, len(genders))
	for _, g := range genders {
		out = append(out, record.FromRaw(map[string]interface{}{record.FieldGender: g}))
	}
	return out
}

func TestCategorize(t *testing.T) {
	students := roster(
		record.GenderMale, record.GenderFemale, record.GenderMale,
		record.GenderMale, record.GenderFemale,
	)
	p := Categorize(students, record.FieldGender, []string{record.GenderMale, record.GenderFemale})

	assert.Equal(t, 5, p.Total)
	assert.Equal(t, 3, p.Entry(record.GenderMale).Count)
	assert.Equal(t, 2, p.Entry(record.GenderFemale).Count)
	assert.InDelta(t, 60, p.Entry(record.GenderMale).Percentage, 1e-9)
	assert.InDelta(t, 40, p.Entry(record.GenderFemale).Percentage, 1e-9)
	assert.Equal(t, []string{record.GenderMale, record.GenderFemale}, p.Order)
}

// Counts sum to Total even when some records fall outside the category set
func TestCategorizePartitionInvariant(t *testing.T) {
	students := roster(record.GenderMale, "؟", record.GenderFemale, "")
	p := Categorize(students, record.FieldGender, []string{record.GenderMale, record.GenderFemale})

	sum := 0
	for _, cat := range p.Order {
		sum += p.Entry(cat).Count
	}
	assert.Equal(t, p.Total, sum)
	assert.Equal(t, 2, p.Total)
}

func TestCategorizeZeroTotal(t *testing.T) {
	p := Categorize(nil, record.FieldGender, []string{record.GenderMale, record.GenderFemale})

	assert.Equal(t, 0, p.Total)
	assert.Equal(t, 0.0, p.Entry(record.GenderMale).Percentage)
	assert.Equal(t, 0.0, p.Entry(record.GenderFemale).Percentage)
}

func TestMultiBreakdown(t *testing.T) {
	students := []record.Student{
		record.FromRaw(map[string]interface{}{record.FieldIssueKinds: []string{"دراسية", "نفسية"}}),
		record.FromRaw(map[string]interface{}{record.FieldIssueKinds: []string{"دراسية"}}),
		record.FromRaw(map[string]interface{}{}),
	}
	p := MultiBreakdown(students, record.FieldIssueKinds, []string{"دراسية", "عائلية", "نفسية"})

	// Total counts answering students, not chosen options
	assert.Equal(t, 2, p.Total)
	assert.Equal(t, 2, p.Entry("دراسية").Count)
	assert.Equal(t, 1, p.Entry("نفسية").Count)
	assert.Equal(t, 0, p.Entry("عائلية").Count)
	assert.InDelta(t, 100, p.Entry("دراسية").Percentage, 1e-9)
}

func TestPercentage(t *testing.T) {
	assert.InDelta(t, 50, Percentage(1, 2), 1e-9)
	assert.InDelta(t, 100.0/3.0, Percentage(1, 3), 1e-9)
	assert.Equal(t, 0.0, Percentage(0, 0))
	assert.Equal(t, 0.0, Percentage(5, 0))
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		in     string
		want   float64
		wantOk bool
	}{
		{"62.5", 62.5, true},
		{"62.5%", 62.5, true},
		{" 80 % ", 80, true},
		{"", 0, false},
		{"نسبة", 0, false},
	}
	for _, tc := range tests {
		got, ok := ParsePercent(tc.in)
		assert.Equal(t, tc.wantOk, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNumericColumn(t *testing.T) {
	students := []record.Student{
		record.FromRaw(map[string]interface{}{record.FieldTermOneAverage: "12.5"}),
		record.FromRaw(map[string]interface{}{record.FieldTermOneAverage: "غائب"}),
		record.FromRaw(map[string]interface{}{record.FieldTermOneAverage: "NaN"}),
		record.FromRaw(map[string]interface{}{}),
		record.FromRaw(map[string]interface{}{record.FieldTermOneAverage: "9"}),
	}
	assert.Equal(t, []float64{12.5, 9}, NumericColumn(students, record.FieldTermOneAverage))
}
