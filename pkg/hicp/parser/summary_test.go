package parser

import (
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
)

func buildSummary(t *testing.T, rows [][]interface{}) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	if _, err := f.NewSheet("Summary"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		row := row
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}
	return f
}

func TestLoadSummary(t *testing.T) {
	f := buildSummary(t, [][]interface{}{
		{"Harmonised Index of Consumer Prices"},
		{"", "Contents", "", "", ""},
		{"", "Sheet 1", "", "2015=100", "All-items HICP"},
		{"", "Sheet 2", "", "", "Bread and cereals"},
		{"", "Sheet 3", "", "2015=100", "Milk, cheese and eggs"},
	})
	defer f.Close()

	spec := SummarySpec{SheetNameCol: 1, BaseCol: 3, DescriptionCol: 4}
	entries, err := LoadSummary(f, "Summary", spec)
	if err != nil {
		t.Fatalf("LoadSummary failed: %v", err)
	}

	// The title row, the Contents sentinel and the base-less Sheet 2 row
	// are all dropped; order is preserved.
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(entries), entries)
	}
	if entries[0].SheetName != "Sheet 1" || entries[0].Description != "All-items HICP" || entries[0].Base != "2015=100" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].SheetName != "Sheet 3" || entries[1].Description != "Milk, cheese and eggs" {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestLoadSummaryWithoutBaseColumn(t *testing.T) {
	f := buildSummary(t, [][]interface{}{
		{"", "Contents", "", ""},
		{"", "Sheet 1", "", "Food weights"},
		{"", "Sheet 2", "", "Transport weights"},
	})
	defer f.Close()

	spec := SummarySpec{SheetNameCol: 1, BaseCol: -1, DescriptionCol: 3}
	entries, err := LoadSummary(f, "Summary", spec)
	if err != nil {
		t.Fatalf("LoadSummary failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Base != "" {
		t.Errorf("Expected empty base, got %q", entries[0].Base)
	}
}

func TestLoadSummaryMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	_, err := LoadSummary(f, "Summary", SummarySpec{SheetNameCol: 1, BaseCol: -1, DescriptionCol: 3})
	if !errors.Is(err, ErrSheetNotFound) {
		t.Fatalf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestLoadSummaryMissingColumn(t *testing.T) {
	f := buildSummary(t, [][]interface{}{
		{"", "Sheet 1", "", "2015=100", "All-items HICP"},
	})
	defer f.Close()

	spec := SummarySpec{SheetNameCol: 1, BaseCol: 3, DescriptionCol: 10}
	_, err := LoadSummary(f, "Summary", spec)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Expected ErrMissingColumn, got %v", err)
	}

	var serr *StructuralError
	if !errors.As(err, &serr) {
		t.Fatalf("Expected StructuralError, got %T", err)
	}
}

func TestLoadSummaryNegativeRequiredColumn(t *testing.T) {
	f := buildSummary(t, [][]interface{}{
		{"", "Sheet 1", "", "desc"},
	})
	defer f.Close()

	_, err := LoadSummary(f, "Summary", SummarySpec{SheetNameCol: -1, BaseCol: -1, DescriptionCol: 3})
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Expected ErrMissingColumn, got %v", err)
	}
}
