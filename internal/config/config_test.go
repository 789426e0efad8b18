package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlens.yaml")

	cfg := &Config{DateOrder: DateOrderMonthFirst, RulesFile: "rules/categories.yaml"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_DefaultsDateOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rules_file: r.yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DateOrderDayFirst, cfg.DateOrder)
}

func TestLoad_InvalidDateOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("date_order: year-first\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date_order")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendlens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("date_order: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, DateOrderDayFirst, cfg.DateOrder)
	assert.Empty(t, cfg.RulesFile)
}
