package models

import (
	"strconv"
	"strings"
)

// Row represents a single worksheet row of typed cells.
type Row struct {
	// Number is the 1-based worksheet row number.
	Number int
	// Cells holds the row's cells by 0-based column index.
	Cells []Cell
}

// Cell returns the cell at the 0-based column index and whether it exists.
func (r Row) Cell(index int) (Cell, bool) {
	if index < 0 || index >= len(r.Cells) {
		return Cell{}, false
	}
	return r.Cells[index], true
}

// Len returns the number of cells in the row.
func (r Row) Len() int { return len(r.Cells) }

// IsBlank reports whether every cell in the row is empty.
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	parts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		parts[i] = c.String()
	}
	return "row " + strconv.Itoa(r.Number) + " [" + strings.Join(parts, ", ") + "]"
}
