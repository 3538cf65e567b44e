package narrative

import (
	"fmt"
	"strconv"
	"strings"

	"murshid/domain/record"
	"murshid/domain/report"
)

// FormatPercent renders a percentage to 2 decimals. Rounding is display-only:
// the rounded values of one partition are never corrected to sum to 100.
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64) + "%"
}

// FormatGrade renders a grade or mean to 2 decimals
func FormatGrade(g float64) string {
	return strconv.FormatFloat(g, 'f', 2, 64)
}

// Generator produces the Arabic report prose. The term labels default to the
// first and second trimester of the Algerian school calendar.
type Generator struct {
	TermALabel string
	TermBLabel string
}

// NewGenerator creates a generator with the default term labels
func NewGenerator() *Generator {
	return &Generator{
		TermALabel: "الفصل الأول",
		TermBLabel: "الفصل الثاني",
	}
}

// SubjectNarrative describes one two-term subject comparison: direction,
// classified magnitude and the per-term values of the compared measure.
func (g *Generator) SubjectNarrative(cmp report.TermComparison) string {
	var b strings.Builder
	fmt.Fprintf(&b, "في مادة %s انتقلت النسبة من %s في %s إلى %s في %s",
		cmp.Subject, FormatPercent(cmp.ValueA), g.TermALabel, FormatPercent(cmp.ValueB), g.TermBLabel)

	switch {
	case cmp.Difference > 0:
		fmt.Fprintf(&b, "، أي بتحسن %s قدره %s", ClassifyMagnitude(cmp.Difference), FormatPercent(cmp.Difference))
	case cmp.Difference < 0:
		fmt.Fprintf(&b, "، أي بتراجع %s قدره %s", ClassifyMagnitude(cmp.Difference), FormatPercent(-cmp.Difference))
	default:
		b.WriteString("، أي دون أي تغير بين الفصلين")
	}
	b.WriteString(".")
	return b.String()
}

// ClassSummary names the most improved and most declined subjects across all
// comparisons. An empty comparison list surfaces the guard error from the
// extremes fold; callers render the no-data notice in that case.
func (g *Generator) ClassSummary(comparisons []report.TermComparison) (string, error) {
	best, err := MostImproved(comparisons)
	if err != nil {
		return "", err
	}
	worst, err := MostDeclined(comparisons)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "سجلت مادة %s أكبر تحسن بين الفصلين بفارق %s (%s)",
		best.Subject, FormatPercent(best.Difference), ClassifyMagnitude(best.Difference))
	if worst.Difference < 0 {
		fmt.Fprintf(&b, "، في حين سجلت مادة %s أكبر تراجع بفارق %s (%s)",
			worst.Subject, FormatPercent(-worst.Difference), ClassifyMagnitude(worst.Difference))
	} else {
		b.WriteString("، ولم تسجل أي مادة تراجعًا بين الفصلين")
	}
	b.WriteString(".")
	return b.String(), nil
}

// PartitionNarrative summarizes a category partition in one sentence.
// A zero-total partition renders the no-data notice instead of an empty block.
func (g *Generator) PartitionNarrative(label string, p report.Partition) string {
	if p.Total == 0 {
		return NoDataNotice
	}

	parts := make([]string, 0, len(p.Order))
	for _, cat := range p.Order {
		entry := p.Entry(cat)
		parts = append(parts, fmt.Sprintf("%s: %d (%s)", cat, entry.Count, FormatPercent(entry.Percentage)))
	}
	return fmt.Sprintf("توزيع %s على مجموع %d تلميذًا — %s.", label, p.Total, strings.Join(parts, "، "))
}

// DistributionNarrative describes one subject's grade distribution for one
// term: pass-rate band, mean level, spread and the dominance diagnosis.
func (g *Generator) DistributionNarrative(s report.SubjectStats) string {
	if s.Count == 0 {
		return NoDataNotice
	}

	var b strings.Builder
	fmt.Fprintf(&b, "بلغت نسبة النجاح في مادة %s %s وهي نسبة %s، بمعدل عام قدره %s وهو مستوى %s",
		s.Subject, FormatPercent(s.PassRate), ClassifyPassRate(s.PassRate),
		FormatGrade(s.Mean), ClassifyMeanLevel(s.Mean))
	fmt.Fprintf(&b, "، مع %s (انحراف معياري %s). ", ClassifySpread(s.StdDev), FormatGrade(s.StdDev))
	b.WriteString(DiagnoseDistribution(s.Bands))
	b.WriteString(".")
	return b.String()
}

// StudentNarrative builds the per-student prose block from the record's
// fields. Every sentence about the student selects between the two fixed
// gendered phrasings of its slot; missing fields simply drop their sentence.
func (g *Generator) StudentNarrative(s record.Student) string {
	sentences := []string{
		fmt.Sprintf(phraseIntro.For(s),
			s.Scalar(record.FieldFullName), s.Scalar(record.FieldClass), s.Scalar(record.FieldInstitution)),
	}

	if s.Scalar(record.FieldRepeatYear) == record.AnswerYes {
		sentences = append(sentences, phraseRepeat.For(s))
	}
	if s.Scalar(record.FieldChronicIllness) == record.AnswerYes {
		illness := s.Scalar(record.FieldIllnessKind)
		if illness == "" {
			illness = "غير محدد"
		}
		sentences = append(sentences, fmt.Sprintf(phraseIllness.For(s), illness))
	}

	sentences = append(sentences, g.averagesSentences(s)...)

	if s.Scalar(record.FieldHasIssue) == record.AnswerYes {
		kinds := s.List(record.FieldIssueKinds)
		kind := "غير محددة"
		if len(kinds) > 0 {
			kind = strings.Join(kinds, " و")
		}
		sentences = append(sentences, fmt.Sprintf(phraseIssue.For(s), kind))
	}

	return strings.Join(sentences, "، ") + "."
}

// averagesSentences describes the student's two term averages and classifies
// the delta between them with the shared magnitude bands.
func (g *Generator) averagesSentences(s record.Student) []string {
	termA, okA := s.Number(record.FieldTermOneAverage)
	termB, okB := s.Number(record.FieldTermTwoAverage)
	if !okA || !okB {
		return []string{phraseNoAverages.For(s)}
	}

	out := []string{fmt.Sprintf(phraseAverages.For(s), FormatGrade(termA), FormatGrade(termB))}
	delta := termB - termA
	switch {
	case delta > 0:
		out = append(out, fmt.Sprintf(phraseImproved.For(s), ClassifyMagnitude(delta)))
	case delta < 0:
		out = append(out, fmt.Sprintf(phraseDeclined.For(s), ClassifyMagnitude(delta)))
	default:
		out = append(out, phraseStable.For(s))
	}
	return out
}
