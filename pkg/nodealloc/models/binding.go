package models

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ColumnBinding pins an expected header text to a column.
type ColumnBinding struct {
	// Header is the exact text expected in the header row.
	Header string
	// Index is the 0-based column index.
	Index int
}

// NodeBinding is the column holding a compute node's assignee.
type NodeBinding struct {
	// Node is the node display name used in reports.
	Node string
	// Column locates the node's assignee column.
	Column ColumnBinding
}

// Layout selects how a data row encodes its date.
type Layout string

const (
	// DateSingle uses one column holding a native date value.
	DateSingle Layout = "single"
	// DateSplit uses three numeric columns for day, month and year.
	DateSplit Layout = "split"
)

// DateSpec describes where a data row's date lives.
type DateSpec struct {
	Layout Layout
	// Column is used by DateSingle.
	Column ColumnBinding
	// Day, Month and Year are used by DateSplit.
	Day   ColumnBinding
	Month ColumnBinding
	Year  ColumnBinding
}

// Bindings returns the header bindings the date columns require.
func (s DateSpec) Bindings() []ColumnBinding {
	if s.Layout == DateSplit {
		return []ColumnBinding{s.Day, s.Month, s.Year}
	}
	return []ColumnBinding{s.Column}
}

// ColumnName converts a 0-based column index to its spreadsheet letter, e.g. 0 -> "A".
func ColumnName(index int) string {
	name, err := excelize.ColumnNumberToName(index + 1)
	if err != nil {
		return "#" + strconv.Itoa(index)
	}
	return name
}
