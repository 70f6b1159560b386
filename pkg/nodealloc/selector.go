package nodealloc

import "github.com/ukaji3/nodealloc-go/pkg/nodealloc/models"

// SelectRow returns the single row whose date equals target.
// Rows are scanned in order; a row whose date cannot be read aborts the scan,
// and a second match fails immediately with both rows attached. Blank rows
// are not skipped here; parser.ReadSheet drops them before selection.
func SelectRow(rows []models.Row, spec models.DateSpec, target models.Date) (models.Row, error) {
	var (
		match models.Row
		found bool
	)
	for _, row := range rows {
		date, err := RowDate(row, spec)
		if err != nil {
			return models.Row{}, &RowError{Row: row.Number, Err: err}
		}
		if date != target {
			continue
		}
		if found {
			return models.Row{}, &MultipleMatchesError{Target: target, Rows: []models.Row{match, row}}
		}
		match, found = row, true
	}
	if !found {
		return models.Row{}, &NoMatchError{Target: target}
	}
	return match, nil
}

// RowDate extracts a data row's date according to spec.
func RowDate(row models.Row, spec models.DateSpec) (models.Date, error) {
	if spec.Layout == models.DateSplit {
		day, err := intAt(row, spec.Day.Index)
		if err != nil {
			return models.Date{}, err
		}
		month, err := intAt(row, spec.Month.Index)
		if err != nil {
			return models.Date{}, err
		}
		year, err := intAt(row, spec.Year.Index)
		if err != nil {
			return models.Date{}, err
		}
		return models.DateFromParts(day, month, year)
	}

	cell, ok := row.Cell(spec.Column.Index)
	if !ok {
		return models.Date{}, &MissingColumnError{Index: spec.Column.Index}
	}
	date, err := cell.AsDate()
	if err != nil {
		return models.Date{}, models.WithIndex(err, spec.Column.Index)
	}
	return date, nil
}

func intAt(row models.Row, index int) (int64, error) {
	cell, ok := row.Cell(index)
	if !ok {
		return 0, &MissingColumnError{Index: index}
	}
	v, err := cell.AsInteger()
	if err != nil {
		return 0, models.WithIndex(err, index)
	}
	return v, nil
}
