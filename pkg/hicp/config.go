package hicp

import (
	"fmt"
	"os"

	"github.com/hicptools/hicp-go/pkg/hicp/models"
	"gopkg.in/yaml.v3"
)

// Config is the YAML file shape for overriding load options. Every field is
// optional; unset fields keep the value already present in the Options the
// config is applied to.
type Config struct {
	Main          *WorkbookConfig       `yaml:"main"`
	Detailed      *WorkbookConfig       `yaml:"detailed"`
	Weights       *WorkbookConfig       `yaml:"weights"`
	Categories    []CategoryRangeConfig `yaml:"categories"`
	CollectErrors *bool                 `yaml:"collect_errors"`
}

// WorkbookConfig overrides one workbook's path and layout.
type WorkbookConfig struct {
	Path         string         `yaml:"path"`
	HeaderRow    *int           `yaml:"header_row"`
	SummarySheet string         `yaml:"summary_sheet"`
	Summary      *SummaryConfig `yaml:"summary"`
}

// SummaryConfig overrides summary column positions. Pointer fields
// distinguish "unset" from a legitimate column index 0.
type SummaryConfig struct {
	SheetNameCol   *int `yaml:"sheet_name_col"`
	BaseCol        *int `yaml:"base_col"`
	DescriptionCol *int `yaml:"description_col"`
}

// CategoryRangeConfig is one classifier range in config form.
type CategoryRangeConfig struct {
	Lo       int    `yaml:"lo"`
	Hi       int    `yaml:"hi"`
	Category string `yaml:"category"`
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Apply overlays the config on opts and returns the result. Category ranges,
// if present, replace the classifier wholesale and are validated for
// overlap.
func (c *Config) Apply(opts Options) (Options, error) {
	applyWorkbook(c.Main, &opts.MainPath, &opts.Main)
	applyWorkbook(c.Detailed, &opts.DetailedPath, &opts.Detailed)
	applyWorkbook(c.Weights, &opts.WeightsPath, &opts.Weights)

	if c.CollectErrors != nil {
		opts.CollectErrors = *c.CollectErrors
	}

	if len(c.Categories) > 0 {
		ranges := make([]CategoryRange, len(c.Categories))
		for i, rc := range c.Categories {
			ranges[i] = CategoryRange{Lo: rc.Lo, Hi: rc.Hi, Category: models.Category(rc.Category)}
		}
		classifier, err := NewClassifier(ranges)
		if err != nil {
			return opts, fmt.Errorf("config categories: %w", err)
		}
		opts.Classifier = classifier
	}
	return opts, nil
}

func applyWorkbook(cfg *WorkbookConfig, path *string, spec *WorkbookSpec) {
	if cfg == nil {
		return
	}
	if cfg.Path != "" {
		*path = cfg.Path
	}
	if cfg.HeaderRow != nil {
		spec.HeaderRow = *cfg.HeaderRow
	}
	if cfg.SummarySheet != "" {
		spec.SummarySheet = cfg.SummarySheet
	}
	if cfg.Summary != nil {
		if cfg.Summary.SheetNameCol != nil {
			spec.Summary.SheetNameCol = *cfg.Summary.SheetNameCol
		}
		if cfg.Summary.BaseCol != nil {
			spec.Summary.BaseCol = *cfg.Summary.BaseCol
		}
		if cfg.Summary.DescriptionCol != nil {
			spec.Summary.DescriptionCol = *cfg.Summary.DescriptionCol
		}
	}
}
