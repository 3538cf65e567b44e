package excel

import (
	"context"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"murshid/domain/record"
	apperrors "murshid/internal/errors"
)

// exportColumns are the roster fields written to the export workbook, in order
var exportColumns = []string{
	record.FieldFullName,
	record.FieldGender,
	record.FieldClass,
	record.FieldInstitution,
	record.FieldDirectorate,
	record.FieldTermOneAverage,
	record.FieldTermTwoAverage,
	record.FieldIssueKinds,
}

// RosterExporter writes a student subset to an xlsx workbook
type RosterExporter struct{}

// NewRosterExporter creates an exporter
func NewRosterExporter() *RosterExporter {
	return &RosterExporter{}
}

// Export writes the students to path, one row per record with a header row
func (e *RosterExporter) Export(ctx context.Context, path string, students []record.Student) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, field := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, field); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for rowIdx, s := range students {
		for col, field := range exportColumns {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, s.Scalar(field)); err != nil {
				return fmt.Errorf("failed to write row %d: %w", rowIdx+1, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return apperrors.ExportError("failed to save workbook", err)
	}
	log.Printf("[RosterExporter] Wrote %d records to %s", len(students), path)
	return nil
}
