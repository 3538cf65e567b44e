// Package excel adapts roster spreadsheets (xlsx and csv) to the record
// model, and writes the flagged-student export workbook.
package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"murshid/domain/record"
	"murshid/domain/schema"
	apperrors "murshid/internal/errors"
)

// multiSeparator splits multi-select cells as the source sheets write them
const multiSeparator = "،"

// RosterReader reads a questionnaire roster from an Excel or CSV file
type RosterReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
	registry *schema.Registry
}

// NewRosterReader creates a reader that handles both Excel and CSV files
func NewRosterReader(filePath string, registry *schema.Registry) *RosterReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &RosterReader{filePath: filePath, fileType: fileType, registry: registry}
}

// Load reads the roster into normalized student records
func (r *RosterReader) Load(ctx context.Context) ([]record.Student, error) {
	log.Printf("[RosterReader] Reading %s roster: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, apperrors.ImportError(fmt.Sprintf("roster file not found: %s", r.filePath), err)
	}

	var headers []string
	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		headers, rows, err = r.readCSV()
	default:
		headers, rows, err = r.readExcel()
	}
	if err != nil {
		return nil, apperrors.ImportError("roster import failed", err)
	}

	students := make([]record.Student, 0, len(rows))
	for _, row := range rows {
		students = append(students, r.toStudent(headers, row))
	}

	log.Printf("[RosterReader] Loaded %d records with %d fields", len(students), len(headers))
	return students, nil
}

func (r *RosterReader) readExcel() ([]string, [][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("roster sheet is empty")
	}
	return rows[0], rows[1:], nil
}

func (r *RosterReader) readCSV() ([]string, [][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV data: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}
	return records[0], records[1:], nil
}

// toStudent maps one row to a student, normalizing multi-select cells into
// option lists when the schema declares the field multi-select.
func (r *RosterReader) toStudent(headers []string, row []string) record.Student {
	raw := make(map[string]interface{}, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		if header == "" || i >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[i])
		if r.isMultiSelect(header) && cell != "" {
			raw[header] = splitOptions(cell)
		} else {
			raw[header] = cell
		}
	}
	return record.FromRaw(raw)
}

func (r *RosterReader) isMultiSelect(field string) bool {
	if r.registry == nil {
		return false
	}
	f, err := r.registry.Field(field)
	return err == nil && f.Kind == schema.KindMultiSelect
}

func splitOptions(cell string) []string {
	parts := strings.Split(cell, multiSeparator)
	options := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			options = append(options, p)
		}
	}
	return options
}
