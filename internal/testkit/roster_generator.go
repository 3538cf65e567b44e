package testkit

import (
	"fmt"
	"math/rand"
	"strconv"

	"murshid/domain/record"
	"murshid/domain/schema"
	"murshid/internal/report"
)

var (
	maleNames   = []string{"محمد أمين", "يوسف بن عمر", "عبد الرحمن قادري", "أيمن بوزيد", "إلياس مرابط"}
	femaleNames = []string{"أمينة بلقاسم", "خديجة حمداني", "نور الهدى سعدي", "سارة بوعلام", "مريم زروقي"}
	classes     = []string{"4م1", "4م2", "4م3"}
	directorates = []string{"الجزائر وسط", "وهران", "قسنطينة"}
)

// Generator produces deterministic synthetic rosters. The same seed always
// yields the same roster, so tests can assert on aggregate values.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with a fixed seed
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Roster generates n synthetic questionnaire records
func (g *Generator) Roster(n int) []record.Student {
	students := make([]record.Student, 0, n)
	for i := 0; i < n; i++ {
		students = append(students, g.student(i))
	}
	return students
}

func (g *Generator) student(i int) record.Student {
	female := g.rng.Intn(2) == 1
	name := maleNames[g.rng.Intn(len(maleNames))]
	gender := record.GenderMale
	if female {
		name = femaleNames[g.rng.Intn(len(femaleNames))]
		gender = record.GenderFemale
	}

	termA := 6 + g.rng.Float64()*12 // 6..18
	termB := clampGrade(termA + (g.rng.Float64()*6 - 3))

	raw := map[string]interface{}{
		record.FieldFullName:       fmt.Sprintf("%s %02d", name, i+1),
		record.FieldGender:         gender,
		record.FieldBirthDate:      fmt.Sprintf("%d-%02d-%02d", 2009+g.rng.Intn(3), 1+g.rng.Intn(12), 1+g.rng.Intn(28)),
		record.FieldClass:          classes[g.rng.Intn(len(classes))],
		record.FieldInstitution:    "متوسطة الإخوة سعدي",
		record.FieldDirectorate:    directorates[g.rng.Intn(len(directorates))],
		record.FieldSiblingCount:   strconv.Itoa(g.rng.Intn(6)),
		record.FieldTermOneAverage: strconv.FormatFloat(termA, 'f', 2, 64),
		record.FieldTermTwoAverage: strconv.FormatFloat(termB, 'f', 2, 64),
	}

	if g.rng.Intn(5) == 0 {
		raw[record.FieldRepeatYear] = record.AnswerYes
		raw[record.FieldRepeatCount] = "1"
	} else {
		raw[record.FieldRepeatYear] = record.AnswerNo
	}

	if g.rng.Intn(4) == 0 {
		raw[record.FieldHasIssue] = record.AnswerYes
		raw[record.FieldIssueKinds] = []string{schema.IssueKinds[g.rng.Intn(len(schema.IssueKinds))]}
	} else {
		raw[record.FieldHasIssue] = record.AnswerNo
	}

	return record.FromRaw(raw)
}

// SubjectGrades generates two-term grade arrays for every subject in the
// default schema, sized to the roster.
func (g *Generator) SubjectGrades(n int) []report.SubjectGrades {
	out := make([]report.SubjectGrades, 0, len(schema.Subjects))
	for _, subject := range schema.Subjects {
		sg := report.SubjectGrades{Subject: subject}
		base := 7 + g.rng.Float64()*6
		drift := g.rng.Float64()*4 - 2
		for i := 0; i < n; i++ {
			sg.TermA = append(sg.TermA, clampGrade(base+g.rng.NormFloat64()*2.5))
			sg.TermB = append(sg.TermB, clampGrade(base+drift+g.rng.NormFloat64()*2.5))
		}
		out = append(out, sg)
	}
	return out
}

func clampGrade(grade float64) float64 {
	if grade < 0 {
		return 0
	}
	if grade > 20 {
		return 20
	}
	return grade
}
