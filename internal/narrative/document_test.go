package narrative

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"murshid/domain/record"
)

func testCover() Letterhead {
	return Letterhead{
		Ministry:    "وزارة التربية الوطنية",
		Directorate: "وهران",
		Institution: "متوسطة الإخوة سعدي",
		Counselor:   "ليلى بن يوسف",
		SchoolYear:  "2025/2026",
	}
}

func TestBuildFlaggedDocument(t *testing.T) {
	g := NewGenerator()
	students := []record.Student{
		flaggedStudent(record.GenderFemale),
		flaggedStudent(record.GenderMale),
	}

	doc := g.BuildFlaggedDocument(testCover(), students)
	assert.Len(t, doc.Blocks, 2)
	assert.Contains(t, doc.Title, "تقرير متابعة")
}

func TestBuildFlaggedDocumentEmpty(t *testing.T) {
	g := NewGenerator()
	doc := g.BuildFlaggedDocument(testCover(), nil)
	assert.Equal(t, []string{NoDataNotice}, doc.Blocks)
}

func TestBuildFlaggedList(t *testing.T) {
	g := NewGenerator()
	doc := g.BuildFlaggedList(testCover(), []record.Student{flaggedStudent(record.GenderFemale)})

	assert.Len(t, doc.Blocks, 1)
	assert.Contains(t, doc.Blocks[0], "| 1 | سارة بوعلام | 4م2 | دراسية |")
}

func TestDocumentMarkdown(t *testing.T) {
	g := NewGenerator()
	doc := g.BuildFlaggedDocument(testCover(), []record.Student{
		flaggedStudent(record.GenderFemale),
		flaggedStudent(record.GenderMale),
	})

	md := doc.Markdown()
	assert.Contains(t, md, "وزارة التربية الوطنية")
	assert.Contains(t, md, "مديرية التربية لولاية وهران")
	assert.Contains(t, md, "# "+doc.Title)
	assert.Contains(t, md, "السنة الدراسية: 2025/2026")
	assert.Contains(t, md, pageBreak)
	// blocks are separated by a horizontal rule
	assert.Contains(t, md, "\n---\n")
}

func TestDocumentHTML(t *testing.T) {
	g := NewGenerator()
	doc := g.BuildFlaggedList(testCover(), []record.Student{flaggedStudent(record.GenderFemale)})

	out := doc.HTML()
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, `<div class="page-break"></div>`)
	// the markdown table renders as a real table
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "سارة بوعلام")
}
