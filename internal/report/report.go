// Package report assembles the aggregator outputs into one report and
// emits it as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jcjones/flightcircle-statistics/internal/models"
	"github.com/jcjones/flightcircle-statistics/internal/stats"
)

// Report is the full set of fleet-utilization statistics derived from
// one event log.
type Report struct {
	DatasetMetadata                      stats.DatasetMetadata         `json:"dataset_metadata"`
	WeekendWeekdayUtilization            stats.UtilizationSplit        `json:"weekend_weekday_utilization"`
	AirportUtilization                   map[string]int                `json:"airport_utilization"`
	AirportUtilizationByHours            map[string]float64            `json:"airport_utilization_by_hours"`
	LengthOfReservationByHours           []stats.HistogramBin          `json:"length_of_reservation_by_hours"`
	DaysBetweenUsageByAircraft           map[string][]float64          `json:"days_between_usage_by_aircraft"`
	UsageByWeekday                       map[string]map[string]int     `json:"usage_by_weekday"`
	AircraftAvailableByAirportAndWeekday map[string]map[string]float64 `json:"aircraft_available_by_airport_and_weekday"`

	// Extracted entities, retained for rendering.
	aircraft []string
	airports []string
}

// Generate runs every aggregator over the event log. The first
// failing precondition aborts the whole report; there is no partial
// output.
func Generate(events []models.Event) (*Report, error) {
	aircraft := stats.GatherAircraft(events)
	airports := stats.GatherLocations(events)

	metadata, err := stats.GatherMetadata(events)
	if err != nil {
		return nil, fmt.Errorf("failed to gather metadata: %w", err)
	}

	availability, err := stats.AvailabilityByAirportAndWeekday(events, aircraft, airports)
	if err != nil {
		return nil, fmt.Errorf("failed to compute availability: %w", err)
	}

	return &Report{
		DatasetMetadata:                      metadata,
		WeekendWeekdayUtilization:            stats.WeekendWeekdayUtilization(events),
		AirportUtilization:                   stats.AirportUtilization(events),
		AirportUtilizationByHours:            stats.AirportUtilizationByHours(events),
		LengthOfReservationByHours:           stats.LengthHistogram(events),
		DaysBetweenUsageByAircraft:           stats.DaysBetweenUsage(events),
		UsageByWeekday:                       stats.UsageByWeekday(events),
		AircraftAvailableByAirportAndWeekday: availability,
		aircraft:                             aircraft,
		airports:                             airports,
	}, nil
}

// WriteJSON serializes the report, indented, to w.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
