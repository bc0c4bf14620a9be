package parser

import (
	"fmt"

	"github.com/hicptools/hicp-go/pkg/hicp/models"
	"github.com/xuri/excelize/v2"
)

// contentsSentinel marks a non-data header row some workbooks include in
// their summary sheet.
const contentsSentinel = "Contents"

// SummarySpec names the 0-based column positions of the summary sheet's
// fields. The source files address these columns by auto-generated
// positional names ("Unnamed: 1"); explicit indices replace that.
type SummarySpec struct {
	// SheetNameCol holds the data sheet name and doubles as the sentinel
	// column: rows reading "Contents" there are skipped.
	SheetNameCol int
	// BaseCol holds the index base period. Negative when the workbook's
	// summary has no base column.
	BaseCol int
	// DescriptionCol holds the sheet's descriptive label.
	DescriptionCol int
}

// LoadSummary reads a workbook's index sheet and extracts the ordered list
// of data sheets with their metadata. Rows missing a value in any selected
// column are dropped entirely; row order is preserved.
func LoadSummary(f *excelize.File, sheetName string, spec SummarySpec) ([]models.SummaryEntry, error) {
	if spec.SheetNameCol < 0 || spec.DescriptionCol < 0 {
		return nil, &StructuralError{Sheet: sheetName, Reason: "summary spec has negative column index", Err: ErrMissingColumn}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &StructuralError{Sheet: sheetName, Reason: fmt.Sprintf("cannot read summary sheet: %v", err), Err: ErrSheetNotFound}
	}

	// A required column beyond every row's width means the workbook does not
	// have the expected layout at all.
	maxWidth := 0
	for _, row := range rows {
		if len(row) > maxWidth {
			maxWidth = len(row)
		}
	}
	for _, col := range []int{spec.SheetNameCol, spec.DescriptionCol} {
		if col >= maxWidth {
			return nil, &StructuralError{
				Sheet:  sheetName,
				Reason: fmt.Sprintf("column index %d beyond sheet width %d", col, maxWidth),
				Err:    ErrMissingColumn,
			}
		}
	}
	if spec.BaseCol >= maxWidth {
		return nil, &StructuralError{
			Sheet:  sheetName,
			Reason: fmt.Sprintf("base column index %d beyond sheet width %d", spec.BaseCol, maxWidth),
			Err:    ErrMissingColumn,
		}
	}

	var entries []models.SummaryEntry
	for _, row := range rows {
		name := cellAt(row, spec.SheetNameCol)
		if name == "" || name == contentsSentinel {
			continue
		}
		description := cellAt(row, spec.DescriptionCol)
		if description == "" {
			continue
		}
		base := ""
		if spec.BaseCol >= 0 {
			base = cellAt(row, spec.BaseCol)
			if base == "" {
				continue
			}
		}
		entries = append(entries, models.SummaryEntry{
			SheetName:   name,
			Base:        base,
			Description: description,
		})
	}
	return entries, nil
}
