package hicp

import (
	"fmt"

	"github.com/hicptools/hicp-go/pkg/hicp/parser"
)

// Aliases for the parser's error surface, so callers matching failures only
// need this package.
type (
	// StructuralError is a fatal workbook layout problem.
	StructuralError = parser.StructuralError
	// ParseError is a fatal period-label parse failure.
	ParseError = parser.ParseError
)

// Sentinels re-exported for errors.Is matching.
var (
	ErrSheetNotFound = parser.ErrSheetNotFound
	ErrNoHeader      = parser.ErrNoHeader
	ErrMissingColumn = parser.ErrMissingColumn
)

// WorkbookError attaches the workbook path to a sheet-level failure.
type WorkbookError struct {
	Workbook string
	Err      error
}

func (e *WorkbookError) Error() string {
	return fmt.Sprintf("workbook %s: %v", e.Workbook, e.Err)
}

func (e *WorkbookError) Unwrap() error {
	return e.Err
}
