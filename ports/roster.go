package ports

import (
	"context"

	"murshid/domain/record"
)

// RosterSource delivers the imported questionnaire records
type RosterSource interface {
	Load(ctx context.Context) ([]record.Student, error)
}

// RosterExporter hands a student subset to the spreadsheet collaborator
type RosterExporter interface {
	Export(ctx context.Context, path string, students []record.Student) error
}
