package models

import (
	"errors"
	"fmt"
)

// TypeMismatchError indicates a cell does not hold the variant a coercion requires.
type TypeMismatchError struct {
	Expected Kind
	Actual   Kind
	// Index is the 0-based column of the cell, or -1 when unknown.
	Index int
}

func newTypeMismatch(expected, actual Kind) *TypeMismatchError {
	return &TypeMismatchError{Expected: expected, Actual: actual, Index: -1}
}

func (e *TypeMismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
	}
	return fmt.Sprintf("type mismatch in column %s: expected %s, got %s",
		ColumnName(e.Index), e.Expected, e.Actual)
}

// WithIndex stamps the column index onto a TypeMismatchError inside err.
// Other errors are returned unchanged.
func WithIndex(err error, index int) error {
	var tm *TypeMismatchError
	if !errors.As(err, &tm) {
		return err
	}
	stamped := *tm
	stamped.Index = index
	return &stamped
}

// InvalidDateError indicates numeric day, month and year parts that do not
// form a calendar date.
type InvalidDateError struct {
	Year  int64
	Month int64
	Day   int64
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date: day %d, month %d, year %d", e.Day, e.Month, e.Year)
}
