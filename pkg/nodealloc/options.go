// Package nodealloc answers "who is assigned to each node on a date" from an
// allocation spreadsheet.
package nodealloc

import (
	"fmt"
	"time"

	"github.com/ukaji3/nodealloc-go/internal/logger"
	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
)

// DefaultSheet is the worksheet read when none is configured.
const DefaultSheet = "Allocation"

// DefaultPlaceholder is reported for nodes with an empty assignee cell.
const DefaultPlaceholder = "unassigned"

// Schema is the static worksheet layout a workbook must match.
type Schema struct {
	// Sheet is the worksheet name.
	Sheet string
	// Date locates each data row's date.
	Date models.DateSpec
	// Nodes lists node columns in report order.
	Nodes []models.NodeBinding
	// Columns lists additional header columns that must be present.
	Columns []models.ColumnBinding
	// Placeholder replaces empty assignees in reports.
	Placeholder string
}

// DefaultSchema returns the built-in layout: a Date column in A followed by
// node01 to node04 in B to E.
func DefaultSchema() Schema {
	nodes := make([]models.NodeBinding, 4)
	for i := range nodes {
		name := fmt.Sprintf("node%02d", i+1)
		nodes[i] = models.NodeBinding{
			Node:   name,
			Column: models.ColumnBinding{Header: name, Index: i + 1},
		}
	}
	return Schema{
		Sheet: DefaultSheet,
		Date: models.DateSpec{
			Layout: models.DateSingle,
			Column: models.ColumnBinding{Header: "Date", Index: 0},
		},
		Nodes:       nodes,
		Placeholder: DefaultPlaceholder,
	}
}

// HeaderBindings returns every binding validated against the header row:
// date columns first, then extra columns, then node columns.
func (s Schema) HeaderBindings() []models.ColumnBinding {
	bindings := append([]models.ColumnBinding{}, s.Date.Bindings()...)
	bindings = append(bindings, s.Columns...)
	for _, n := range s.Nodes {
		bindings = append(bindings, n.Column)
	}
	return bindings
}

// Options configures a lookup.
type Options struct {
	// Schema is the expected worksheet layout.
	Schema Schema
	// Logger receives progress messages. If nil, nothing is logged.
	Logger logger.Logger
}

// DefaultOptions returns options using the built-in schema.
func DefaultOptions() Options {
	return Options{Schema: DefaultSchema()}
}

func (o Options) log() logger.Logger {
	if o.Logger == nil {
		return logger.NopLogger{}
	}
	return o.Logger
}

func (o Options) placeholder() string {
	if o.Schema.Placeholder == "" {
		return DefaultPlaceholder
	}
	return o.Schema.Placeholder
}

// Clock supplies the current time for resolving the default query date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the local wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// Today returns the local calendar date according to clk.
func Today(clk Clock) models.Date {
	return models.DateOf(clk.Now().Local())
}
