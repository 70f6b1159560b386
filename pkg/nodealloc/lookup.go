package nodealloc

import (
	"errors"
	"os"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/parser"
	"github.com/xuri/excelize/v2"
)

// Lookup reports who is assigned to each configured node on target.
func Lookup(path string, target models.Date, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, &WorkbookError{Path: path, Err: ErrFileNotFound}
	}

	f, err := parser.Open(path)
	if err != nil {
		return nil, &WorkbookError{Path: path, Err: err}
	}
	defer f.Close()

	opts.log().Debugf("opened workbook %s", path)
	return LookupFile(f, target, opts)
}

// LookupFile runs a lookup against an already open workbook.
func LookupFile(f *excelize.File, target models.Date, opts Options) (*models.Report, error) {
	log := opts.log()
	schema := opts.Schema

	sheet, err := parser.ReadSheet(f, schema.Sheet)
	if err != nil {
		if errors.Is(err, parser.ErrSheetNotFound) {
			return nil, &WorksheetNotFoundError{Name: schema.Sheet}
		}
		return nil, &WorkbookError{Path: f.Path, Err: err}
	}
	log.Debugf("read sheet %q: %d data rows", sheet.Name, len(sheet.Rows))

	if err := ValidateHeader(sheet.Header, schema.HeaderBindings()); err != nil {
		return nil, err
	}
	log.Debugf("header matches schema")

	row, err := SelectRow(sheet.Rows, schema.Date, target)
	if err != nil {
		return nil, err
	}
	log.Infof("selected row %d for %s", row.Number, target)

	assignments, err := BuildReport(row, schema.Nodes, sheet.Header, opts.placeholder())
	if err != nil {
		return nil, err
	}

	return &models.Report{Date: target, Assignments: assignments}, nil
}
