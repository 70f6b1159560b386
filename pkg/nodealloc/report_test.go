package nodealloc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
)

func scenarioNodes() []models.NodeBinding {
	return []models.NodeBinding{
		{Node: "node01", Column: models.ColumnBinding{Header: "node01", Index: 4}},
		{Node: "node02", Column: models.ColumnBinding{Header: "node02", Index: 5}},
		{Node: "node03", Column: models.ColumnBinding{Header: "node03", Index: 6}},
	}
}

func TestBuildReport(t *testing.T) {
	row := datedRow(2, day(1), "x", "y", "z", "alice", "bob", "")

	got, err := BuildReport(row, scenarioNodes(), scenarioHeader, DefaultPlaceholder)
	require.NoError(t, err)
	assert.Equal(t, []models.Assignment{
		{Node: "node01", Assignee: "alice", Assigned: true},
		{Node: "node02", Assignee: "bob", Assigned: true},
		{Node: "node03", Assignee: "unassigned", Assigned: false},
	}, got)
}

func TestBuildReportPreservesBindingOrder(t *testing.T) {
	row := datedRow(2, day(1), "x", "y", "z", "alice", "bob", "carol")
	nodes := scenarioNodes()
	reversed := []models.NodeBinding{nodes[2], nodes[0], nodes[1]}

	got, err := BuildReport(row, reversed, scenarioHeader, DefaultPlaceholder)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "node03", got[0].Node)
	assert.Equal(t, "carol", got[0].Assignee)
	assert.Equal(t, "node01", got[1].Node)
	assert.Equal(t, "node02", got[2].Node)
}

func TestBuildReportDisplaysNonTextAssignees(t *testing.T) {
	row := models.Row{Number: 2, Cells: []models.Cell{
		models.DateTime(day(1).Time()), models.Empty(), models.Empty(), models.Empty(),
		models.Int(7), models.Error("#N/A"),
	}}

	got, err := BuildReport(row, scenarioNodes(), scenarioHeader, "-")
	require.NoError(t, err)
	assert.Equal(t, "7", got[0].Assignee)
	assert.Equal(t, "#ERROR: #N/A", got[1].Assignee)
	// short row: the trailing column is treated as empty
	assert.Equal(t, "-", got[2].Assignee)
	assert.False(t, got[2].Assigned)
}

func TestBuildReportRechecksNodeHeader(t *testing.T) {
	header := textRow(1, "Date", "A", "B", "C", "wrongname", "node02", "node03")
	row := datedRow(2, day(1), "x", "y", "z", "alice", "bob", "")

	_, err := BuildReport(row, scenarioNodes(), header, DefaultPlaceholder)
	var hm *HeaderMismatchError
	require.True(t, errors.As(err, &hm))
	assert.Equal(t, 4, hm.Index)
	assert.Equal(t, "node01", hm.Expected)
	assert.Equal(t, "wrongname", hm.Actual)
}
