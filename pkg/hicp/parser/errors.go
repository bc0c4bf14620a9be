package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates a sheet named in the summary (or the summary
// sheet itself) is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrNoHeader indicates a sheet has no usable header row at the configured index.
var ErrNoHeader = errors.New("header row missing")

// ErrMissingColumn indicates a required summary column is absent.
var ErrMissingColumn = errors.New("required column missing")

// StructuralError represents a fatal layout problem in a workbook: a missing
// sheet, a missing summary column, or a sheet without its expected header.
type StructuralError struct {
	Sheet  string
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error in sheet %q: %s: %v", e.Sheet, e.Reason, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// ParseError represents a period label that cannot be interpreted as a
// calendar date. It identifies the offending sheet and cell.
type ParseError struct {
	Sheet string
	Cell  string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in sheet %q cell %s: period label %q: %v", e.Sheet, e.Cell, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
