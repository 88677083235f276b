package stats

import (
	"errors"
	"time"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// ErrNoQualifyingEvents means the dataset contains no non-maintenance
// event with a tach reading, so its date bounds cannot be determined.
var ErrNoQualifyingEvents = errors.New("no non-maintenance event with a tach reading")

// DatasetMetadata summarizes the date bounds of the dataset. The
// bounds consider only flown (non-maintenance, tach-bearing) events;
// NumEvents counts every record.
type DatasetMetadata struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	LengthDays int    `json:"length_days"`
	NumEvents  int    `json:"num_events"`
}

// GatherMetadata finds the earliest start and latest end among flown
// events. Returns ErrNoQualifyingEvents when no event qualifies.
func GatherMetadata(events []models.Event) (DatasetMetadata, error) {
	var start, end time.Time
	found := false

	for _, evt := range events {
		if evt.IsMaintenance() || !evt.TachValid {
			continue
		}
		if !found || evt.Start.Before(start) {
			start = evt.Start
		}
		if !found || evt.End.After(end) {
			end = evt.End
		}
		found = true
	}

	if !found {
		return DatasetMetadata{}, ErrNoQualifyingEvents
	}

	return DatasetMetadata{
		StartDate:  start.Format(models.TimestampLayout),
		EndDate:    end.Format(models.TimestampLayout),
		LengthDays: int(end.Sub(start) / (24 * time.Hour)),
		NumEvents:  len(events),
	}, nil
}
