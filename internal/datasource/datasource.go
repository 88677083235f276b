// Package datasource loads reservation/maintenance event logs from
// the formats schedulers export them in.
package datasource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jcjones/flightcircle-statistics/internal/models"
	"github.com/jcjones/flightcircle-statistics/internal/store"
)

// Load reads an event log, dispatching on the file extension. CSV and
// XLSX files are parsed directly; .db/.sqlite files are read from a
// previously imported event store.
func Load(path, sheet string) ([]models.Event, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path, sheet)
	case ".db", ".sqlite":
		return loadStore(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv, .xlsx, .db or .sqlite)", filepath.Ext(path))
	}
}

func loadStore(path string) ([]models.Event, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.LoadEvents()
}
