package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowCell(t *testing.T) {
	row := Row{Number: 2, Cells: []Cell{Text("a"), Empty()}}

	c, ok := row.Cell(0)
	assert.True(t, ok)
	assert.Equal(t, "a", c.DisplayString())

	_, ok = row.Cell(2)
	assert.False(t, ok)
	_, ok = row.Cell(-1)
	assert.False(t, ok)

	assert.False(t, row.IsBlank())
	assert.True(t, Row{Cells: []Cell{Empty(), Empty()}}.IsBlank())
	assert.Equal(t, `row 2 ["a", ]`, row.String())
}

func TestColumnName(t *testing.T) {
	assert.Equal(t, "A", ColumnName(0))
	assert.Equal(t, "Z", ColumnName(25))
	assert.Equal(t, "AA", ColumnName(26))
}

func TestDateSpecBindings(t *testing.T) {
	single := DateSpec{Layout: DateSingle, Column: ColumnBinding{Header: "Date", Index: 0}}
	assert.Equal(t, []ColumnBinding{{Header: "Date", Index: 0}}, single.Bindings())

	split := DateSpec{
		Layout: DateSplit,
		Day:    ColumnBinding{Header: "Day", Index: 0},
		Month:  ColumnBinding{Header: "Month", Index: 1},
		Year:   ColumnBinding{Header: "Year", Index: 2},
	}
	assert.Len(t, split.Bindings(), 3)
	assert.Equal(t, "Year", split.Bindings()[2].Header)
}
