package narrative

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"murshid/domain/core"
	"murshid/domain/record"
	"murshid/domain/report"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPercent(12.5))
	assert.Equal(t, "0.00%", FormatPercent(0))
	assert.Equal(t, "33.33%", FormatPercent(100.0/3.0))
}

func TestFormatGrade(t *testing.T) {
	assert.Equal(t, "14.25", FormatGrade(14.25))
	assert.Equal(t, "9.00", FormatGrade(9))
}

func TestSubjectNarrative(t *testing.T) {
	g := NewGenerator()

	improved := g.SubjectNarrative(report.TermComparison{
		Subject: "الرياضيات", ValueA: 40, ValueB: 60, Difference: 20,
	})
	assert.Contains(t, improved, "الرياضيات")
	assert.Contains(t, improved, "40.00%")
	assert.Contains(t, improved, "60.00%")
	assert.Contains(t, improved, "تحسن")
	assert.Contains(t, improved, string(MagnitudeVeryLarge))

	declined := g.SubjectNarrative(report.TermComparison{
		Subject: "اللغة الفرنسية", ValueA: 55, ValueB: 48, Difference: -7,
	})
	assert.Contains(t, declined, "تراجع")
	assert.Contains(t, declined, string(MagnitudeNoticeable))
	// the rendered delta carries no sign
	assert.Contains(t, declined, "7.00%")
	assert.NotContains(t, declined, "-7.00%")

	unchanged := g.SubjectNarrative(report.TermComparison{
		Subject: "التاريخ والجغرافيا", ValueA: 50, ValueB: 50, Difference: 0,
	})
	assert.Contains(t, unchanged, "دون أي تغير")
}

func TestClassSummary(t *testing.T) {
	g := NewGenerator()
	comparisons := []report.TermComparison{
		{Subject: "اللغة العربية", Difference: 20},
		{Subject: "الرياضيات", Difference: -5},
		{Subject: "اللغة الفرنسية", Difference: 1},
	}

	summary, err := g.ClassSummary(comparisons)
	require.NoError(t, err)
	assert.Contains(t, summary, "اللغة العربية")
	assert.Contains(t, summary, "الرياضيات")
	assert.Contains(t, summary, "أكبر تحسن")
	assert.Contains(t, summary, "أكبر تراجع")
}

func TestClassSummaryNoDecline(t *testing.T) {
	g := NewGenerator()
	summary, err := g.ClassSummary([]report.TermComparison{
		{Subject: "اللغة العربية", Difference: 4},
		{Subject: "الرياضيات", Difference: 2},
	})
	require.NoError(t, err)
	assert.Contains(t, summary, "ولم تسجل أي مادة تراجعًا")
}

func TestClassSummaryEmpty(t *testing.T) {
	g := NewGenerator()
	_, err := g.ClassSummary(nil)
	assert.ErrorIs(t, err, core.ErrInsufficientData)
}

func TestPartitionNarrative(t *testing.T) {
	g := NewGenerator()
	p := report.Partition{
		Field: record.FieldGender,
		Total: 5,
		Order: []string{record.GenderMale, record.GenderFemale},
		Entries: map[string]report.CategoryEntry{
			record.GenderMale:   {Count: 3, Percentage: 60, Total: 5},
			record.GenderFemale: {Count: 2, Percentage: 40, Total: 5},
		},
	}

	out := g.PartitionNarrative("التلاميذ حسب الجنس", p)
	assert.Contains(t, out, "60.00%")
	assert.Contains(t, out, "40.00%")
	assert.Contains(t, out, record.GenderMale)

	empty := g.PartitionNarrative("التلاميذ حسب الجنس", report.Partition{})
	assert.Equal(t, NoDataNotice, empty)
}

func TestDistributionNarrative(t *testing.T) {
	g := NewGenerator()
	s := report.SubjectStats{
		Subject:  "الرياضيات",
		Count:    20,
		Mean:     11.2,
		StdDev:   2.4,
		PassRate: 65,
		Bands: map[report.GradeBand]report.CategoryEntry{
			report.BandAverage: {Count: 12, Percentage: 60, Total: 20},
			report.BandWeak:    {Count: 8, Percentage: 40, Total: 20},
		},
	}

	out := g.DistributionNarrative(s)
	assert.Contains(t, out, string(RateGood))
	assert.Contains(t, out, string(LevelMedium))
	assert.Contains(t, out, string(SpreadMedium))
	assert.Contains(t, out, dominanceTable[1].text)

	assert.Equal(t, NoDataNotice, g.DistributionNarrative(report.SubjectStats{}))
}

func flaggedStudent(gender string) record.Student {
	return record.FromRaw(map[string]interface{}{
		record.FieldFullName:       "سارة بوعلام",
		record.FieldGender:         gender,
		record.FieldClass:          "4م2",
		record.FieldInstitution:    "متوسطة الإخوة سعدي",
		record.FieldRepeatYear:     record.AnswerYes,
		record.FieldTermOneAverage: "9.5",
		record.FieldTermTwoAverage: "12",
		record.FieldHasIssue:       record.AnswerYes,
		record.FieldIssueKinds:     []string{"دراسية"},
	})
}

func TestStudentNarrativeGendering(t *testing.T) {
	g := NewGenerator()

	feminine := g.StudentNarrative(flaggedStudent(record.GenderFemale))
	assert.Contains(t, feminine, "التلميذة")
	assert.Contains(t, feminine, "وهي معيدة")
	assert.Contains(t, feminine, "تحصلت على معدل")
	assert.Contains(t, feminine, "أبدت رغبتها")

	masculine := g.StudentNarrative(flaggedStudent(record.GenderMale))
	assert.Contains(t, masculine, "التلميذ")
	assert.NotContains(t, masculine, "التلميذة")
	assert.Contains(t, masculine, "وهو معيد")
	assert.Contains(t, masculine, "أبدى رغبته")

	// missing gender falls back to the masculine phrasing
	unanswered := g.StudentNarrative(flaggedStudent(""))
	assert.Contains(t, unanswered, "التلميذ")
}

func TestStudentNarrativeAverages(t *testing.T) {
	g := NewGenerator()

	improved := g.StudentNarrative(flaggedStudent(record.GenderMale))
	assert.Contains(t, improved, "9.50")
	assert.Contains(t, improved, "12.00")
	assert.Contains(t, improved, "تحسنًا")

	s := flaggedStudent(record.GenderMale)
	s[record.FieldTermTwoAverage] = record.Scalar("9.5")
	stable := g.StudentNarrative(s)
	assert.Contains(t, stable, "حافظ على نفس المعدل")

	s[record.FieldTermTwoAverage] = record.Scalar("")
	missing := g.StudentNarrative(s)
	assert.Contains(t, missing, "لم تسجل له معدلات")
}

func TestStudentNarrativeIllness(t *testing.T) {
	g := NewGenerator()
	s := flaggedStudent(record.GenderMale)
	s[record.FieldChronicIllness] = record.Scalar(record.AnswerYes)

	// unnamed illness renders the placeholder instead of empty parentheses
	out := g.StudentNarrative(s)
	assert.Contains(t, out, "مرض مزمن")
	assert.Contains(t, out, "غير محدد")

	s[record.FieldIllnessKind] = record.Scalar("الربو")
	out = g.StudentNarrative(s)
	assert.Contains(t, out, "الربو")
}

func TestStudentNarrativeIssueKinds(t *testing.T) {
	g := NewGenerator()
	s := flaggedStudent(record.GenderMale)
	s[record.FieldIssueKinds] = record.Multi([]string{"دراسية", "نفسية"})

	out := g.StudentNarrative(s)
	assert.Contains(t, out, "دراسية ونفسية")
	assert.True(t, strings.HasSuffix(out, "."))
}
