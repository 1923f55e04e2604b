// Package xlsxreport renders the statistics export workbook. Each
// university gets its own sheet with one row per (direction, subject,
// literature) and the direction/subject columns merged over contiguous
// runs.
package xlsxreport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row is one literature line of a sheet, already in report order.
// Electron marks records with a stored electronic copy.
type Row struct {
	DirectionNumber string
	DirectionName   string
	Course          int
	StudentCount    int
	SubjectName     string
	LiteratureTitle string
	Kind            string
	Author          string
	Publisher       string
	Language        string
	FontType        string
	Year            int
	PrintedCount    int
	Electron        bool
	Availability    int
}

// Sheet is one university's worth of rows.
type Sheet struct {
	Name string
	Rows []Row
}

var headers = []string{
	"Direction number", "Direction", "Course", "Students",
	"Subject", "Literature", "Kind", "Author", "Publisher",
	"Language", "Font", "Year", "Printed copies", "Electron",
	"Availability (%)",
}

// leadingColumns is how many leading cells belong to the grouping key
// and get merged over contiguous runs.
const leadingColumns = 5

// groupKey returns the merge key of a row: the five leading cells.
func groupKey(r Row) [leadingColumns]interface{} {
	return [leadingColumns]interface{}{
		r.DirectionNumber, r.DirectionName, r.Course, r.StudentCount, r.SubjectName,
	}
}

// MergeRuns returns [start, end) index pairs of contiguous rows that
// share the same leading-column values. Single-row runs are included;
// callers skip them when merging.
func MergeRuns(rows []Row) [][2]int {
	runs := [][2]int{}
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i == len(rows) || groupKey(rows[i]) != groupKey(rows[start]) {
			runs = append(runs, [2]int{start, i})
			start = i
		}
	}
	return runs
}

// Build renders the workbook. Sheets appear in the given order; an
// empty sheet still gets its header row.
func Build(sheets []Sheet) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"DDEBF7"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	mergeStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create merge style: %w", err)
	}

	for i, sheet := range sheets {
		name := sanitizeSheetName(sheet.Name, i)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return nil, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", name, err)
			}
		}

		for col, header := range headers {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(name, cell, header); err != nil {
				return nil, fmt.Errorf("failed to write header: %w", err)
			}
		}
		lastHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
		if err := f.SetCellStyle(name, "A1", lastHeader, headerStyle); err != nil {
			return nil, fmt.Errorf("failed to style header: %w", err)
		}

		for rowIdx, row := range sheet.Rows {
			electron := ""
			if row.Electron {
				electron = "available"
			}
			values := []interface{}{
				row.DirectionNumber, row.DirectionName, row.Course, row.StudentCount,
				row.SubjectName, row.LiteratureTitle, row.Kind, row.Author,
				row.Publisher, row.Language, row.FontType, row.Year,
				row.PrintedCount, electron, row.Availability,
			}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(name, cell, v); err != nil {
					return nil, fmt.Errorf("failed to write row: %w", err)
				}
			}
		}

		for _, run := range MergeRuns(sheet.Rows) {
			if run[1]-run[0] < 2 {
				continue
			}
			for col := 1; col <= leadingColumns; col++ {
				top, err := excelize.CoordinatesToCellName(col, run[0]+2)
				if err != nil {
					return nil, err
				}
				bottom, err := excelize.CoordinatesToCellName(col, run[1]+1)
				if err != nil {
					return nil, err
				}
				if err := f.MergeCell(name, top, bottom); err != nil {
					return nil, fmt.Errorf("failed to merge cells: %w", err)
				}
				if err := f.SetCellStyle(name, top, bottom, mergeStyle); err != nil {
					return nil, fmt.Errorf("failed to style merged cells: %w", err)
				}
			}
		}
	}

	return f, nil
}

// BuildBytes renders the workbook into an xlsx byte slice ready to
// serve as an attachment.
func BuildBytes(sheets []Sheet) ([]byte, error) {
	f, err := Build(sheets)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeSheetName keeps sheet names inside the xlsx 31-character
// limit and never empty.
func sanitizeSheetName(name string, index int) string {
	if name == "" {
		return fmt.Sprintf("Sheet%d", index+1)
	}
	runes := []rune(name)
	if len(runes) > 31 {
		return string(runes[:31])
	}
	return name
}
