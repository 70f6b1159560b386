package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc"
)

func writeDefaultWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", nodealloc.DefaultSheet))
	rows := [][]any{
		{"Date", "node01", "node02", "node03", "node04"},
		{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "alice", "bob", nil, "carol"},
		{time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "dave", nil, nil, nil},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		row := row
		require.NoError(t, f.SetSheetRow(nodealloc.DefaultSheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "allocation.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func execute(t *testing.T, clock nodealloc.Clock, args ...string) (string, error) {
	t.Helper()
	var stdout bytes.Buffer
	cmd := newRootCmd(&stdout, clock)
	cmd.SetArgs(append([]string{"--env-file", ""}, args...))
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return stdout.String(), err
}

func TestRunWithDate(t *testing.T) {
	path := writeDefaultWorkbook(t)

	out, err := execute(t, nodealloc.SystemClock{}, "--date", "2024-03-01", path)
	require.NoError(t, err)
	assert.Equal(t, "Allocation for 2024-03-01 (Friday)\n"+
		"node01: alice\n"+
		"node02: bob\n"+
		"node03: unassigned\n"+
		"node04: carol\n", out)
}

func TestRunDefaultsToToday(t *testing.T) {
	path := writeDefaultWorkbook(t)
	clock := nodealloc.FixedClock(time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local))

	out, err := execute(t, clock, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Allocation for 2024-03-04 (Monday)\n")
	assert.Contains(t, out, "node01: dave\n")
	assert.Contains(t, out, "node04: unassigned\n")
}

func TestRunNoMatchPrintsNothing(t *testing.T) {
	path := writeDefaultWorkbook(t)

	out, err := execute(t, nodealloc.SystemClock{}, "-d", "2024-03-02", path)
	var nm *nodealloc.NoMatchError
	require.True(t, errors.As(err, &nm))
	assert.Empty(t, out)
}

func TestRunSheetOverride(t *testing.T) {
	path := writeDefaultWorkbook(t)

	_, err := execute(t, nodealloc.SystemClock{}, "-d", "2024-03-01", "--sheet", "Missing", path)
	var wnf *nodealloc.WorksheetNotFoundError
	require.True(t, errors.As(err, &wnf))
	assert.Equal(t, "Missing", wnf.Name)
}

func TestRunWithConfig(t *testing.T) {
	path := writeDefaultWorkbook(t)
	cfgPath := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`placeholder: free
nodes:
  - node: second
    header: node02
    column: C
  - node: first
    header: node01
    column: B
`), 0o644))

	out, err := execute(t, nodealloc.SystemClock{}, "-c", cfgPath, "-d", "2024-03-04", path)
	require.NoError(t, err)
	assert.Equal(t, "Allocation for 2024-03-04 (Monday)\nsecond: free\nfirst: dave\n", out)
}

func TestRunErrors(t *testing.T) {
	path := writeDefaultWorkbook(t)

	tests := []struct {
		name string
		args []string
	}{
		{"missing file argument", nil},
		{"bad date", []string{"-d", "03/01/2024", path}},
		{"bad log level", []string{"--log-level", "loud", path}},
		{"missing workbook", []string{"-d", "2024-03-01", filepath.Join(t.TempDir(), "none.xlsx")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, nodealloc.SystemClock{}, tt.args...)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}
