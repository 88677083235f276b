package datasource

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// LoadCSV reads a scheduler CSV export: one header row naming the
// fields, one event per remaining row. Input order is preserved.
func LoadCSV(path string) ([]models.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	return readCSV(f)
}

func readCSV(r io.Reader) ([]models.Event, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var events []models.Event
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		line++

		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}

		evt, err := models.ParseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		events = append(events, evt)
	}

	return events, nil
}
