package models

// Assignment is one node's entry in an allocation report.
type Assignment struct {
	// Node is the node display name.
	Node string
	// Assignee is the assigned user, or the placeholder when unassigned.
	Assignee string
	// Assigned is false when the assignee cell was empty.
	Assigned bool
}

// Report is the answer to an allocation query.
type Report struct {
	// Date is the queried date.
	Date Date
	// Assignments lists nodes in configured order.
	Assignments []Assignment
}
