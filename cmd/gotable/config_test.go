package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_loadConfig_Defaults(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"missing file", filepath.Join(t.TempDir(), "nope.toml")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadConfig(tt.path)
			require.NoError(t, err)
			require.Equal(t, defaultConfig(), cfg)
		})
	}
}

func Test_loadConfig_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
rows_on_page = 25
sort = "group,name desc"

[[columns]]
title = "Name"
key   = "name"
width = 20
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 25, cfg.RowsOnPage)
	require.Equal(t, "group,name desc", cfg.Sort)
	require.Equal(t, []ColumnConfig{{Title: "Name", Key: "name", Width: 20}}, cfg.Columns)
}

func Test_loadConfig_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows_on_page = 5\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 5, cfg.RowsOnPage)
	require.Equal(t, defaultConfig().Sort, cfg.Sort)
	require.Equal(t, defaultConfig().Columns, cfg.Columns)
}

func Test_loadConfig_ParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("rows_on_page = [broken"), 0o644))

	_, err := loadConfig(path)
	require.Error(t, err)
}

func Test_sampleData(t *testing.T) {
	rows := sampleData(10)
	require.Len(t, rows, 10)
	require.Contains(t, rows[0], "name")
	require.Contains(t, rows[0], "price")
}
