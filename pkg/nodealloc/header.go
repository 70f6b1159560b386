package nodealloc

import "github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"

// ValidateHeader checks that each binding's column in header holds exactly
// the expected text. It stops at the first binding that fails.
func ValidateHeader(header models.Row, bindings []models.ColumnBinding) error {
	for _, b := range bindings {
		if err := checkHeaderCell(header, b); err != nil {
			return err
		}
	}
	return nil
}

func checkHeaderCell(header models.Row, b models.ColumnBinding) error {
	cell, ok := header.Cell(b.Index)
	if !ok {
		return &MissingColumnError{Index: b.Index}
	}
	text, err := cell.AsText()
	if err != nil {
		return models.WithIndex(err, b.Index)
	}
	if text != b.Header {
		return &HeaderMismatchError{Index: b.Index, Expected: b.Header, Actual: text}
	}
	return nil
}
