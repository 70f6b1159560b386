// Package output renders allocation reports.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"
)

// WriteText writes r as plain text: a line naming the date and weekday,
// then one "<node>: <assignee>" line per assignment.
func WriteText(w io.Writer, r *models.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Allocation for %s (%s)\n", r.Date, r.Date.Weekday())
	for _, a := range r.Assignments {
		fmt.Fprintf(bw, "%s: %s\n", a.Node, a.Assignee)
	}
	return bw.Flush()
}
