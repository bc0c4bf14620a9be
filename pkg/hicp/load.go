package hicp

import (
	"errors"

	"github.com/hicptools/hicp-go/pkg/hicp/models"
	"github.com/hicptools/hicp-go/pkg/hicp/parser"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

// Datasets packages the six tables produced by a full load. Field names
// mirror the conventional dataset names df_all, df_all_items, df_food,
// df_housing_energy, df_transport and df_weights.
type Datasets struct {
	All           models.Dataset `json:"df_all"`
	AllItems      models.Dataset `json:"df_all_items"`
	Food          models.Dataset `json:"df_food"`
	HousingEnergy models.Dataset `json:"df_housing_energy"`
	Transport     models.Dataset `json:"df_transport"`
	Weights       models.Dataset `json:"df_weights"`
}

// DetailedDatasets holds the detailed dataset plus its three per-category
// views. The views are exact-match filters over AllItems and are never
// independently mutated.
type DetailedDatasets struct {
	AllItems      models.Dataset
	Food          models.Dataset
	HousingEnergy models.Dataset
	Transport     models.Dataset
}

// LoadAll loads the main, detailed and weights workbooks and packages the
// six datasets. With CollectErrors set, a non-nil error may accompany
// partially assembled data; otherwise the first failure aborts and no
// datasets are returned.
func LoadAll(opts Options) (*Datasets, error) {
	var errs []error

	all, err := LoadMain(opts.MainPath, opts)
	if err != nil {
		if !opts.CollectErrors {
			return nil, err
		}
		errs = append(errs, err)
	}

	detailed, err := LoadDetailed(opts.DetailedPath, opts)
	if err != nil {
		if !opts.CollectErrors {
			return nil, err
		}
		errs = append(errs, err)
	}
	if detailed == nil {
		detailed = &DetailedDatasets{}
	}

	weights, err := LoadWeights(opts.WeightsPath, opts)
	if err != nil {
		if !opts.CollectErrors {
			return nil, err
		}
		errs = append(errs, err)
	}

	return &Datasets{
		All:           all,
		AllItems:      detailed.AllItems,
		Food:          detailed.Food,
		HousingEnergy: detailed.HousingEnergy,
		Transport:     detailed.Transport,
		Weights:       weights,
	}, errors.Join(errs...)
}

// LoadMain loads the main-categories workbook: all countries by top-level
// category, labeled with each sheet's description.
func LoadMain(path string, opts Options) (models.Dataset, error) {
	return assemble(path, opts.Main, nil, opts.CollectErrors)
}

// LoadDetailed loads the subcategories workbook and partitions the result
// into per-category views via the classifier.
func LoadDetailed(path string, opts Options) (*DetailedDatasets, error) {
	classifier := opts.Classifier
	if classifier == nil {
		classifier = DefaultClassifier()
	}

	allItems, err := assemble(path, opts.Detailed, classifier, opts.CollectErrors)
	if err != nil && !opts.CollectErrors {
		return nil, err
	}

	return &DetailedDatasets{
		AllItems:      allItems,
		Food:          allItems.FilterCategory(models.CategoryFood),
		HousingEnergy: allItems.FilterCategory(models.CategoryHousingEnergy),
		Transport:     allItems.FilterCategory(models.CategoryTransport),
	}, err
}

// LoadWeights loads the COICOP expenditure-weights workbook.
func LoadWeights(path string, opts Options) (models.Dataset, error) {
	return assemble(path, opts.Weights, nil, opts.CollectErrors)
}

// assemble runs one workbook end to end: open, read the summary, clean each
// listed sheet in summary order, and concatenate the labeled results.
// classifier is nil for workbooks without category tagging.
func assemble(path string, spec WorkbookSpec, classifier *Classifier, collect bool) (models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &WorkbookError{Workbook: path, Err: err}
	}
	defer f.Close()

	entries, err := parser.LoadSummary(f, spec.SummarySheet, spec.Summary)
	if err != nil {
		return nil, &WorkbookError{Workbook: path, Err: err}
	}
	log.Debug().Str("workbook", path).Int("sheets", len(entries)).Msg("loaded summary")

	var dataset models.Dataset
	var errs []error
	for _, entry := range entries {
		observations, err := parser.CleanSheet(f, entry.SheetName, spec.HeaderRow)
		if err != nil {
			werr := &WorkbookError{Workbook: path, Err: err}
			if !collect {
				return nil, werr
			}
			log.Warn().Str("workbook", path).Str("sheet", entry.SheetName).Err(err).Msg("skipping sheet")
			errs = append(errs, werr)
			continue
		}

		category := models.Category("")
		if classifier != nil {
			category = classifier.Classify(entry.SheetName)
		}
		for _, obs := range observations {
			dataset = append(dataset, models.Record{
				Observation: obs,
				Label:       entry.Description,
				Category:    category,
			})
		}
		log.Debug().
			Str("workbook", path).
			Str("sheet", entry.SheetName).
			Int("rows", len(observations)).
			Msg("cleaned sheet")
	}
	return dataset, errors.Join(errs...)
}
