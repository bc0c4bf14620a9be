package models

// SummaryEntry is one row of a workbook's index sheet: a data sheet name
// with its metadata.
type SummaryEntry struct {
	// SheetName is the name of the data sheet, e.g. "Sheet 23".
	SheetName string `json:"sheet_name"`
	// Base is the index base period, e.g. "2015=100". Empty for workbooks
	// whose summary carries no base column.
	Base string `json:"base,omitempty"`
	// Description is the human-readable subject of the sheet.
	Description string `json:"description"`
}
