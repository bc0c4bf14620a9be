// Package parser transforms raw HICP worksheets into typed long-format observations.
package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/hicptools/hicp-go/pkg/hicp/models"
	"github.com/xuri/excelize/v2"
)

// Missing-data placeholders used by the source spreadsheets. They only count
// when they make up the complete cell value.
const (
	placeholderColon = ":"
	placeholderD     = "d"
)

// CleanSheet reads one wide-format data sheet and reshapes it into
// long-format observations.
//
// The source layout has a country identifier in column 0 and real data only
// in odd 0-based columns; even columns from 2 on are merged-cell artifacts
// and are discarded. Each kept column's header is a period label parsed as a
// date; a label that fails to parse is fatal for the sheet. Cell values that
// are placeholders or fail numeric coercion drop that observation silently.
//
// headerRow is the 0-based index of the header row. A sheet with no
// surviving observations yields an empty slice, not an error.
func CleanSheet(f *excelize.File, sheetName string, headerRow int) ([]models.Observation, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &StructuralError{Sheet: sheetName, Reason: fmt.Sprintf("cannot read sheet: %v", err), Err: ErrSheetNotFound}
	}
	if len(rows) <= headerRow {
		return nil, &StructuralError{
			Sheet:  sheetName,
			Reason: fmt.Sprintf("sheet has %d rows, header expected at row index %d", len(rows), headerRow),
			Err:    ErrNoHeader,
		}
	}

	header := rows[headerRow]
	if len(header) == 0 || strings.TrimSpace(header[0]) == "" {
		return nil, &StructuralError{Sheet: sheetName, Reason: "first header column is empty", Err: ErrNoHeader}
	}

	// Parse the period label of every kept data column up front so a bad
	// header fails the whole sheet before any row is emitted.
	type periodColumn struct {
		idx  int
		date time.Time
	}
	var cols []periodColumn
	for i := 1; i < len(header); i += 2 {
		label := strings.TrimSpace(header[i])
		date, err := ParsePeriod(label)
		if err != nil {
			cell, _ := excelize.CoordinatesToCellName(i+1, headerRow+1)
			return nil, &ParseError{Sheet: sheetName, Cell: cell, Value: label, Err: err}
		}
		cols = append(cols, periodColumn{idx: i, date: date})
	}

	data := rows[headerRow+1:]

	// Melt: one pass per period column, source row order within each.
	var out []models.Observation
	for _, col := range cols {
		for _, row := range data {
			country := cellAt(row, 0)
			if isMissing(country) {
				continue
			}
			value, ok := coerceValue(cellAt(row, col.idx))
			if !ok {
				continue
			}
			out = append(out, models.Observation{
				Country: country,
				Date:    col.date,
				HICP:    value,
			})
		}
	}
	return out, nil
}

// cellAt returns the trimmed cell value at idx, or "" when the row is
// shorter than idx+1. GetRows trims trailing empty cells, so short rows
// are routine.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isMissing reports whether a cell is empty or one of the source's
// missing-data placeholders.
func isMissing(s string) bool {
	return s == "" || s == placeholderColon || s == placeholderD
}

// coerceValue converts a cell to a finite float. Placeholders and
// non-numeric values report ok=false rather than an error.
func coerceValue(s string) (float64, bool) {
	if isMissing(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
