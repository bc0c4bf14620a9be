// Package hicp assembles long-format HICP datasets from Eurostat-style
// Excel workbooks.
package hicp

import (
	"path/filepath"

	"github.com/hicptools/hicp-go/pkg/hicp/parser"
)

// WorkbookSpec describes where a workbook keeps its data: the 0-based header
// row of each data sheet, the name of the index sheet, and the summary
// column positions.
type WorkbookSpec struct {
	HeaderRow    int
	SummarySheet string
	Summary      parser.SummarySpec
}

// Options configures a load. Zero values are not usable; start from
// DefaultOptions and override.
type Options struct {
	// Workbook file paths.
	MainPath     string
	DetailedPath string
	WeightsPath  string

	// Per-workbook layout.
	Main     WorkbookSpec
	Detailed WorkbookSpec
	Weights  WorkbookSpec

	// Classifier assigns main categories in the detailed dataset.
	// Nil falls back to DefaultClassifier.
	Classifier *Classifier

	// CollectErrors switches the per-sheet error policy from fail-fast
	// (source-faithful default: the first bad sheet aborts the whole load)
	// to collect-and-report: bad sheets are skipped and their errors
	// returned joined, alongside the data from the sheets that survived.
	CollectErrors bool
}

// DefaultOptions returns the layouts and file locations of the standard
// Eurostat HICP exports.
func DefaultOptions() Options {
	return Options{
		MainPath:     filepath.Join("eu_hicp_datasets", "hicp_main_categories_eu.xlsx"),
		DetailedPath: filepath.Join("eu_hicp_datasets", "hicp_subcategories_eu.xlsx"),
		WeightsPath:  filepath.Join("eu_hicp_datasets", "coicop_weights_eu.xlsx"),
		Main: WorkbookSpec{
			HeaderRow:    8,
			SummarySheet: "Summary",
			Summary:      parser.SummarySpec{SheetNameCol: 1, BaseCol: 3, DescriptionCol: 4},
		},
		Detailed: WorkbookSpec{
			HeaderRow:    8,
			SummarySheet: "Summary",
			Summary:      parser.SummarySpec{SheetNameCol: 1, BaseCol: 3, DescriptionCol: 4},
		},
		Weights: WorkbookSpec{
			HeaderRow:    7,
			SummarySheet: "Summary",
			Summary:      parser.SummarySpec{SheetNameCol: 1, BaseCol: -1, DescriptionCol: 3},
		},
		Classifier: DefaultClassifier(),
	}
}
