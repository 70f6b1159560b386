package models

// Sheet represents the typed content of one worksheet.
type Sheet struct {
	// Name is the worksheet name.
	Name string
	// Header is the first row, holding column names.
	Header Row
	// Rows contains the non-blank data rows below the header, in file order.
	Rows []Row
}
