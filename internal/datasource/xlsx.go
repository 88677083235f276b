package datasource

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// LoadXLSX reads a scheduler XLSX export. Row 1 names the fields;
// every following row is one event. An empty sheet name selects the
// workbook's first sheet.
func LoadXLSX(path, sheet string) ([]models.Event, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	header := rows[0]
	var events []models.Event
	for n, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			}
		}

		evt, err := models.ParseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("sheet %q row %d: %w", sheet, n+2, err)
		}
		events = append(events, evt)
	}

	return events, nil
}
