// Package parser reads worksheets into typed rows.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetNotFound indicates the requested worksheet is absent from the workbook.
var ErrSheetNotFound = errors.New("worksheet not found")

// Open opens an xlsx workbook. The caller must Close the returned file.
func Open(path string) (*excelize.File, error) {
	return excelize.OpenFile(path)
}

// ReadSheet reads a worksheet into a header row and its data rows.
// Data rows are padded with empty cells to the header width, and rows
// holding no values at all are skipped.
func ReadSheet(f *excelize.File, sheetName string) (*models.Sheet, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	if idx == -1 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	r := &cellReader{
		f:         f,
		sheetName: sheetName,
		date1904:  uses1904(f),
		dateStyle: make(map[int]bool),
	}

	sheet := &models.Sheet{Name: sheetName, Header: models.Row{Number: 1}}
	if len(rows) == 0 {
		return sheet, nil
	}

	sheet.Header, err = r.readRow(1, rows[0], 0)
	if err != nil {
		return nil, err
	}
	width := sheet.Header.Len()

	for rowIdx := 1; rowIdx < len(rows); rowIdx++ {
		row, err := r.readRow(rowIdx+1, rows[rowIdx], width)
		if err != nil {
			return nil, err
		}
		if row.IsBlank() {
			continue
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	return sheet, nil
}

type cellReader struct {
	f         *excelize.File
	sheetName string
	date1904  bool
	// dateStyle caches whether a style index carries a date number format.
	dateStyle map[int]bool
}

// readRow converts raw values into typed cells, padding to width.
func (r *cellReader) readRow(rowNum int, raw []string, width int) (models.Row, error) {
	n := len(raw)
	if width > n {
		n = width
	}
	row := models.Row{Number: rowNum, Cells: make([]models.Cell, n)}
	for colIdx, value := range raw {
		cell, err := r.readCell(rowNum, colIdx, value)
		if err != nil {
			return models.Row{}, err
		}
		row.Cells[colIdx] = cell
	}
	return row, nil
}

func (r *cellReader) readCell(rowNum, colIdx int, raw string) (models.Cell, error) {
	if raw == "" {
		return models.Empty(), nil
	}

	ref, err := excelize.CoordinatesToCellName(colIdx+1, rowNum)
	if err != nil {
		return models.Cell{}, err
	}
	cellType, err := r.f.GetCellType(r.sheetName, ref)
	if err != nil {
		return models.Cell{}, err
	}

	switch cellType {
	case excelize.CellTypeBool:
		return models.Bool(raw == "1" || strings.EqualFold(raw, "true")), nil
	case excelize.CellTypeError:
		return models.Error(raw), nil
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.Text(raw), nil
	case excelize.CellTypeDate:
		if t, ok := parseISODate(raw); ok {
			return models.DateTime(t), nil
		}
		return models.Text(raw), nil
	}

	// Numbers carry no explicit type; dates are numbers with a date format.
	isDate, err := r.hasDateFormat(ref)
	if err != nil {
		return models.Cell{}, err
	}
	if isDate {
		if serial, err := strconv.ParseFloat(raw, 64); err == nil {
			if t, err := excelize.ExcelDateToTime(serial, r.date1904); err == nil {
				return models.DateTime(t), nil
			}
		}
	}
	return parseValue(raw), nil
}

func (r *cellReader) hasDateFormat(ref string) (bool, error) {
	styleIdx, err := r.f.GetCellStyle(r.sheetName, ref)
	if err != nil {
		return false, err
	}
	if isDate, ok := r.dateStyle[styleIdx]; ok {
		return isDate, nil
	}
	style, err := r.f.GetStyle(styleIdx)
	if err != nil {
		return false, err
	}
	isDate := isDateNumFmt(style.NumFmt, style.CustomNumFmt)
	r.dateStyle[styleIdx] = isDate
	return isDate, nil
}

// parseValue attempts to parse a raw numeric value.
// Returns an Int cell for integers, a Float cell for decimals, or a Text cell.
func parseValue(s string) models.Cell {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Float(f)
	}
	return models.Text(s)
}

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	models.DateLayout,
}

func parseISODate(s string) (time.Time, bool) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func uses1904(f *excelize.File) bool {
	props, err := f.GetWorkbookProps()
	if err != nil || props.Date1904 == nil {
		return false
	}
	return *props.Date1904
}
