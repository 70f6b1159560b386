package nodealloc

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// WorkbookError indicates the workbook could not be opened or decoded.
type WorkbookError struct {
	Path string
	Err  error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("cannot read workbook %s: %v", e.Path, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}

// WorksheetNotFoundError indicates the configured worksheet is absent.
type WorksheetNotFoundError struct {
	Name string
}

func (e *WorksheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found", e.Name)
}

// MissingColumnError indicates a row is shorter than a binding requires.
type MissingColumnError struct {
	Index int
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column %s (index %d)", models.ColumnName(e.Index), e.Index)
}

// HeaderMismatchError indicates the header text at a column differs from the schema.
type HeaderMismatchError struct {
	Index    int
	Expected string
	Actual   string
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("header mismatch in column %s: expected %q, found %q",
		models.ColumnName(e.Index), e.Expected, e.Actual)
}

// NoMatchError indicates no data row carries the target date.
type NoMatchError struct {
	Target models.Date
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no row found for %s", e.Target)
}

// MultipleMatchesError indicates more than one data row carries the target date.
type MultipleMatchesError struct {
	Target models.Date
	// Rows holds the first matching row and the row that conflicted with it.
	Rows []models.Row
}

func (e *MultipleMatchesError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "multiple rows found for %s:", e.Target)
	for _, row := range e.Rows {
		b.WriteString("\n  ")
		b.WriteString(row.String())
	}
	return b.String()
}

// RowError attaches the worksheet row number to an error raised while reading it.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}
