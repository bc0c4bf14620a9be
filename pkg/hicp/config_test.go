package hicp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hicptools/hicp-go/pkg/hicp/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigApply(t *testing.T) {
	path := writeConfig(t, `
weights:
  path: /data/weights.xlsx
  header_row: 5
  summary:
    description_col: 2
main:
  summary:
    sheet_name_col: 0
categories:
  - lo: 1
    hi: 10
    category: Food
collect_errors: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	opts, err := cfg.Apply(DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "/data/weights.xlsx", opts.WeightsPath)
	assert.Equal(t, 5, opts.Weights.HeaderRow)
	assert.Equal(t, 2, opts.Weights.Summary.DescriptionCol)
	assert.Equal(t, -1, opts.Weights.Summary.BaseCol, "unset fields keep defaults")

	assert.Equal(t, 0, opts.Main.Summary.SheetNameCol)
	assert.Equal(t, 4, opts.Main.Summary.DescriptionCol, "unset fields keep defaults")
	assert.Equal(t, 8, opts.Main.HeaderRow)

	assert.True(t, opts.CollectErrors)

	assert.Equal(t, models.CategoryFood, opts.Classifier.Classify("Sheet 5"))
	assert.Equal(t, models.CategoryOther, opts.Classifier.Classify("Sheet 76"),
		"config categories replace the defaults wholesale")
}

func TestApplyRejectsOverlappingCategories(t *testing.T) {
	path := writeConfig(t, `
categories:
  - lo: 1
    hi: 80
    category: Food
  - lo: 76
    hi: 109
    category: Housing & Energy
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	_, err = cfg.Apply(DefaultOptions())
	require.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "categories: [not closed")
	_, err := LoadConfig(path)
	require.Error(t, err)
}
