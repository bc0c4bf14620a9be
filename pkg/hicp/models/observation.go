// Package models defines the data structures produced by HICP workbook ingestion.
package models

import "time"

// Observation represents one cleaned long-format row: a price index value
// for one country at one period.
type Observation struct {
	// Country is the country or region identifier from the sheet's first column.
	Country string `json:"country"`
	// Date is the period the value refers to, parsed from the column header.
	Date time.Time `json:"date"`
	// HICP is the index value. Always finite: rows whose value was a
	// placeholder or failed numeric coercion never survive cleaning.
	HICP float64 `json:"hicp"`
}

// Record is an Observation tagged with the sheet's descriptive label and,
// for the detailed dataset, a main category.
type Record struct {
	Observation
	// Label is the human-readable subject of the source sheet,
	// e.g. "Bread and cereals".
	Label string `json:"label"`
	// Category is set for detailed-dataset records only.
	Category Category `json:"category,omitempty"`
}

// Dataset is an ordered concatenation of records across all sheets of a
// workbook, following summary-row order then within-sheet melt order.
// Duplicate (Country, Date, Label) combinations are preserved as-is.
type Dataset []Record

// FilterCategory returns the records whose Category matches c exactly.
// Row order is preserved.
func (d Dataset) FilterCategory(c Category) Dataset {
	var out Dataset
	for _, r := range d {
		if r.Category == c {
			out = append(out, r)
		}
	}
	return out
}
