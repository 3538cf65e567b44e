package narrative

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"murshid/domain/record"
)

// Letterhead is the cover block of every printed document
type Letterhead struct {
	Ministry    string
	Directorate string
	Institution string
	Counselor   string
	SchoolYear  string
}

// DefaultLetterhead returns the ministry line with the rest left for config
func DefaultLetterhead() Letterhead {
	return Letterhead{Ministry: "وزارة التربية الوطنية"}
}

// Document is an assembled printable report: a cover followed by content
// blocks, with a forced page break after the cover.
type Document struct {
	Title  string
	Cover  Letterhead
	Blocks []string // markdown blocks, one per section
}

// pageBreak is raw HTML passed through the markdown renderer; the print
// stylesheet maps the class to a forced page boundary.
const pageBreak = `<div class="page-break"></div>`

// BuildFlaggedDocument assembles the per-student narrative document for the
// students flagged as having an issue to discuss: cover, page break, then one
// prose block per student. An empty list yields a document whose single block
// is the no-data notice.
func (g *Generator) BuildFlaggedDocument(cover Letterhead, students []record.Student) Document {
	doc := Document{
		Title: "تقرير متابعة التلاميذ المعنيين بمقابلة مستشار التوجيه",
		Cover: cover,
	}
	if len(students) == 0 {
		doc.Blocks = []string{NoDataNotice}
		return doc
	}
	for _, s := range students {
		doc.Blocks = append(doc.Blocks, g.StudentNarrative(s))
	}
	return doc
}

// BuildFlaggedList assembles the list-style document: cover plus one table
// row per flagged student with the issue kinds column.
func (g *Generator) BuildFlaggedList(cover Letterhead, students []record.Student) Document {
	doc := Document{
		Title: "قائمة التلاميذ المعنيين بمقابلة مستشار التوجيه",
		Cover: cover,
	}
	if len(students) == 0 {
		doc.Blocks = []string{NoDataNotice}
		return doc
	}

	var b strings.Builder
	b.WriteString("| الرقم | اللقب والاسم | القسم | نوع المشكلة |\n")
	b.WriteString("|---|---|---|---|\n")
	for i, s := range students {
		kinds := strings.Join(s.List(record.FieldIssueKinds), "، ")
		if kinds == "" {
			kinds = "غير محددة"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n",
			i+1, s.Scalar(record.FieldFullName), s.Scalar(record.FieldClass), kinds)
	}
	doc.Blocks = []string{b.String()}
	return doc
}

// Markdown renders the document as one markdown source string
func (d Document) Markdown() string {
	var b strings.Builder

	b.WriteString(d.Cover.Ministry + "\n\n")
	if d.Cover.Directorate != "" {
		fmt.Fprintf(&b, "مديرية التربية لولاية %s\n\n", d.Cover.Directorate)
	}
	if d.Cover.Institution != "" {
		b.WriteString(d.Cover.Institution + "\n\n")
	}
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	if d.Cover.SchoolYear != "" {
		fmt.Fprintf(&b, "السنة الدراسية: %s\n\n", d.Cover.SchoolYear)
	}
	if d.Cover.Counselor != "" {
		fmt.Fprintf(&b, "مستشار التوجيه: %s\n\n", d.Cover.Counselor)
	}

	b.WriteString(pageBreak + "\n\n")

	for i, block := range d.Blocks {
		b.WriteString(block)
		b.WriteString("\n\n")
		if i < len(d.Blocks)-1 {
			b.WriteString("---\n\n")
		}
	}
	return b.String()
}

// HTML renders the document to the HTML string handed to the external
// open-and-print collaborator. The core's obligation ends here.
func (d Document) HTML() string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	out := markdown.ToHTML([]byte(d.Markdown()), p, renderer)
	return string(out)
}
