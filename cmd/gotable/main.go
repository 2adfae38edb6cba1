// Command gotable runs an interactive demo of the gotable widget over a
// sample dataset.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/bdlm/log"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alp4ka/gotable"
	"github.com/Alp4ka/gotable/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "TOML config path (optional)")
	rows := flag.Int("rows", 0, "sample dataset size (optional, defaults to 100)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithFields(log.Fields{"path": *configPath}).Error(err)
		return 1
	}

	n := 100
	if *rows > 0 {
		n = *rows
	}

	table := gotable.NewTable[gotable.Record]().
		WithData(sampleData(n)).
		WithPage(1, cfg.RowsOnPage)

	if cfg.Sort != "" {
		spec, err := gotable.ParseSortSpec(cfg.Sort, keyMapping(cfg.Columns))
		if err != nil {
			log.WithFields(log.Fields{"sort": cfg.Sort}).Error(err)
			return 1
		}
		table.SetSort(spec.Order, spec.Keys...)
	}

	model, err := tui.New(table, columns(cfg.Columns))
	if err != nil {
		log.Error(err)
		return 1
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Error(err)
		return 1
	}

	return 0
}

func columns(cfgColumns []ColumnConfig) []tui.Column {
	ret := make([]tui.Column, 0, len(cfgColumns))
	for _, c := range cfgColumns {
		ret = append(ret, tui.Column{Title: c.Title, Key: c.Key, Width: c.Width})
	}

	return ret
}

// keyMapping exposes each configured column key as its own sort alias.
func keyMapping(cfgColumns []ColumnConfig) gotable.KeyMapping {
	ret := make(gotable.KeyMapping, len(cfgColumns))
	for _, c := range cfgColumns {
		ret[c.Key] = c.Key
	}

	return ret
}

var (
	sampleNames  = []string{"bolt", "nut", "washer", "screw", "anchor", "rivet", "dowel", "clamp", "hinge", "bracket"}
	sampleGroups = []string{"fasteners", "fixings", "hardware"}
)

func sampleData(n int) []gotable.Record {
	rng := rand.New(rand.NewSource(42))

	ret := make([]gotable.Record, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, gotable.Record{
			"id":    i + 1,
			"name":  fmt.Sprintf("%s-%03d", sampleNames[rng.Intn(len(sampleNames))], i+1),
			"group": sampleGroups[rng.Intn(len(sampleGroups))],
			"price": gotable.Record{
				"amount":   float64(rng.Intn(10000)) / 100,
				"currency": "EUR",
			},
			"stock": rng.Intn(500),
		})
	}

	return ret
}
