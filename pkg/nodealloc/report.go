package nodealloc

import "github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"

// BuildReport maps each node binding to the assignee held by row, in binding
// order. Each node's header cell is rechecked before its value is read.
// Empty assignees are reported as placeholder with Assigned set to false.
func BuildReport(row models.Row, bindings []models.NodeBinding, header models.Row, placeholder string) ([]models.Assignment, error) {
	assignments := make([]models.Assignment, 0, len(bindings))
	for _, b := range bindings {
		if err := checkHeaderCell(header, b.Column); err != nil {
			return nil, err
		}

		// Trailing empty cells may be absent from the row.
		cell, _ := row.Cell(b.Column.Index)
		text := cell.DisplayString()

		a := models.Assignment{Node: b.Node, Assignee: text, Assigned: text != ""}
		if !a.Assigned {
			a.Assignee = placeholder
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
