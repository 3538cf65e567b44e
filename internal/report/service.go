// Package report orchestrates the two pipelines of the application:
// roster -> filter -> sort for display, and roster -> aggregation ->
// narrative for the generated documents.
package report

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"murshid/domain/core"
	"murshid/domain/filter"
	"murshid/domain/record"
	domainreport "murshid/domain/report"
	"murshid/domain/schema"
	"murshid/internal/analysis"
	"murshid/internal/filtering"
	"murshid/internal/narrative"
	"murshid/internal/sorting"
)

// comparisonWorkers bounds the concurrent per-subject aggregation
const comparisonWorkers = 4

// SubjectGrades carries the raw grade arrays of one subject for both terms
type SubjectGrades struct {
	Subject string
	TermA   []float64
	TermB   []float64
}

// TermReport is the full aggregate report consumed by the UI and the
// printable documents.
type TermReport struct {
	GeneratedAt       time.Time
	TotalStudents     int
	Gender            domainreport.Partition
	Repeat            domainreport.Partition
	Issues            domainreport.Partition
	Comparisons       []domainreport.TermComparison
	SubjectNarratives []string
	Distributions     []string
	ClassSummary      string
}

// GradesFromRoster derives a single general-average subject pair from the
// roster's two term-average columns, for rosters imported without per-subject
// grade sheets. Unparseable averages are skipped per term independently.
func GradesFromRoster(students []record.Student) []SubjectGrades {
	sg := SubjectGrades{Subject: "المعدل العام"}
	for _, s := range students {
		if v, ok := s.Number(record.FieldTermOneAverage); ok {
			sg.TermA = append(sg.TermA, v)
		}
		if v, ok := s.Number(record.FieldTermTwoAverage); ok {
			sg.TermB = append(sg.TermB, v)
		}
	}
	return []SubjectGrades{sg}
}

// Service wires the engines together over one roster snapshot
type Service struct {
	generator *narrative.Generator
}

// NewService creates a report service with the default narrative generator
func NewService() *Service {
	return &Service{generator: narrative.NewGenerator()}
}

// Generator exposes the narrative generator for document assembly
func (s *Service) Generator() *narrative.Generator {
	return s.generator
}

// View applies the persisted filter-panel state to the roster: filter first,
// then the stable multi-key sort. Both engines take and return snapshots;
// the input roster is never reordered or mutated.
func (s *Service) View(students []record.Student, state *filter.State) []record.Student {
	if state == nil {
		out := make([]record.Student, len(students))
		copy(out, students)
		return out
	}
	return sorting.Apply(filtering.Apply(students, state.Criteria), state.Sort)
}

// Flagged returns the students marked as having an issue to discuss, in
// roster order.
func (s *Service) Flagged(students []record.Student) []record.Student {
	criteria := filter.NewCriteria()
	criteria.Set(record.FieldHasIssue, []string{record.AnswerYes})
	return filtering.Apply(students, criteria)
}

// Comparisons aggregates every subject's two-term comparison. The per-subject
// statistics are independent, so they run under a bounded errgroup; the
// result keeps the input subject order.
func (s *Service) Comparisons(ctx context.Context, grades []SubjectGrades) ([]domainreport.TermComparison, error) {
	out := make([]domainreport.TermComparison, len(grades))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(comparisonWorkers)
	for i, sg := range grades {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = analysis.CompareTerms(sg.Subject, sg.TermA, sg.TermB, analysis.MeasurePassRate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Build assembles the full term report for a roster and its grade arrays.
// An empty subject list degrades to the no-data class summary instead of an
// error; only cancellation propagates.
func (s *Service) Build(ctx context.Context, students []record.Student, grades []SubjectGrades) (*TermReport, error) {
	comparisons, err := s.Comparisons(ctx, grades)
	if err != nil {
		return nil, err
	}

	tr := &TermReport{
		GeneratedAt:   time.Now(),
		TotalStudents: len(students),
		Gender: analysis.Categorize(students, record.FieldGender,
			[]string{record.GenderMale, record.GenderFemale}),
		Repeat: analysis.Categorize(students, record.FieldRepeatYear,
			[]string{record.AnswerYes, record.AnswerNo}),
		Issues:      analysis.MultiBreakdown(students, record.FieldIssueKinds, schema.IssueKinds),
		Comparisons: comparisons,
	}

	for _, cmp := range comparisons {
		tr.SubjectNarratives = append(tr.SubjectNarratives, s.generator.SubjectNarrative(cmp))
		tr.Distributions = append(tr.Distributions, s.generator.DistributionNarrative(cmp.TermB))
	}

	summary, err := s.generator.ClassSummary(comparisons)
	switch {
	case errors.Is(err, core.ErrInsufficientData):
		tr.ClassSummary = narrative.NoDataNotice
	case err != nil:
		return nil, err
	default:
		tr.ClassSummary = summary
	}

	return tr, nil
}
