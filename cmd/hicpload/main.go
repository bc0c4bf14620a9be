// Package main provides the CLI entry point for hicp-go.
package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hicptools/hicp-go/pkg/hicp"
	"github.com/hicptools/hicp-go/pkg/hicp/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	mainPath      string
	detailedPath  string
	weightsPath   string
	configPath    string
	outputDir     string
	format        string
	pretty        bool
	collectErrors bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hicpload",
		Short: "Load Eurostat HICP workbooks into long-format datasets",
		Long: `hicpload reads the main-categories, subcategories and expenditure-weights
HICP workbooks, cleans every data sheet into long format, and writes the six
assembled datasets (df_all, df_all_items, df_food, df_housing_energy,
df_transport, df_weights) as CSV or JSON files.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&mainPath, "main", "", "Path to the main-categories workbook")
	rootCmd.Flags().StringVar(&detailedPath, "detailed", "", "Path to the subcategories workbook")
	rootCmd.Flags().StringVar(&weightsPath, "weights", "", "Path to the expenditure-weights workbook")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file overriding workbook layouts")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "out", "Directory for the dataset files")
	rootCmd.Flags().StringVar(&format, "format", "csv", "Output format: csv or json")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&collectErrors, "collect-errors", false,
		"Skip failing sheets and report their errors instead of aborting on the first one")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	setupEnvironment()

	if format != "csv" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be csv or json)", format)
	}

	opts := hicp.DefaultOptions()
	if configPath != "" {
		cfg, err := hicp.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts, err = cfg.Apply(opts)
		if err != nil {
			return err
		}
	}

	// Precedence: flag, then environment, then config/defaults.
	applyPathOverride(&opts.MainPath, mainPath, "HICP_MAIN_FILE")
	applyPathOverride(&opts.DetailedPath, detailedPath, "HICP_DETAILED_FILE")
	applyPathOverride(&opts.WeightsPath, weightsPath, "HICP_WEIGHTS_FILE")
	if collectErrors {
		opts.CollectErrors = true
	}

	datasets, err := hicp.LoadAll(opts)
	if err != nil {
		if !opts.CollectErrors {
			return fmt.Errorf("load failed: %w", err)
		}
		log.Warn().Err(err).Msg("Some sheets failed; continuing with the remainder")
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	outputs := []struct {
		name string
		data models.Dataset
	}{
		{"df_all", datasets.All},
		{"df_all_items", datasets.AllItems},
		{"df_food", datasets.Food},
		{"df_housing_energy", datasets.HousingEnergy},
		{"df_transport", datasets.Transport},
		{"df_weights", datasets.Weights},
	}

	for _, out := range outputs {
		filename := filepath.Join(outputDir, out.name+"."+format)
		if err := writeDataset(filename, out.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", filename, err)
		}
		log.Info().Str("file", filename).Int("rows", len(out.data)).Msg("Wrote dataset")
	}
	return nil
}

// setupEnvironment loads .env if present and configures zerolog output and level.
func setupEnvironment() {
	err := godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	switch strings.ToLower(os.Getenv("LOGLEVEL")) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file")
	}
}

func applyPathOverride(target *string, flagValue, envKey string) {
	if flagValue != "" {
		*target = flagValue
		return
	}
	if envValue := os.Getenv(envKey); envValue != "" {
		*target = envValue
	}
}

func writeDataset(path string, data models.Dataset) error {
	switch filepath.Ext(path) {
	case ".json":
		return writeJSON(path, data)
	default:
		return writeCSV(path, data)
	}
}

func writeJSON(path string, data models.Dataset) error {
	var (
		raw []byte
		err error
	)
	if pretty {
		raw, err = json.MarshalIndent(data, "", "  ")
	} else {
		raw, err = json.Marshal(data)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}

func writeCSV(path string, data models.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Country", "Date", "HICP", "Label", "Category"}); err != nil {
		return err
	}
	for _, r := range data {
		record := []string{
			r.Country,
			r.Date.Format("2006-01-02"),
			strconv.FormatFloat(r.HICP, 'f', -1, 64),
			r.Label,
			string(r.Category),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
