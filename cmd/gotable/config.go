package main

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the demo's table setup.
type Config struct {
	RowsOnPage int
	Sort       string
	Columns    []ColumnConfig
}

// ColumnConfig describes one rendered column.
type ColumnConfig struct {
	Title string `toml:"title"`
	Key   string `toml:"key"`
	Width int    `toml:"width"`
}

func defaultConfig() Config {
	return Config{
		RowsOnPage: 10,
		Sort:       "name asc",
		Columns: []ColumnConfig{
			{Title: "Name", Key: "name", Width: 16},
			{Title: "Group", Key: "group", Width: 10},
			{Title: "Price", Key: "price.amount", Width: 8},
			{Title: "Stock", Key: "stock", Width: 6},
		},
	}
}

// loadConfig parses the TOML config at path, falling back to defaults when
// the file is missing or path is empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RowsOnPage int            `toml:"rows_on_page"`
		Sort       string         `toml:"sort"`
		Columns    []ColumnConfig `toml:"columns"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.RowsOnPage > 0 {
		cfg.RowsOnPage = raw.RowsOnPage
	}
	if raw.Sort != "" {
		cfg.Sort = raw.Sort
	}
	if len(raw.Columns) > 0 {
		cfg.Columns = raw.Columns
	}

	return cfg, nil
}
