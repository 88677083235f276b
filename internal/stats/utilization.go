package stats

import "github.com/jcjones/flightcircle-statistics/internal/models"

// UtilizationCount holds an event count with its per-aircraft
// breakdown.
type UtilizationCount struct {
	Total      int            `json:"total"`
	ByAircraft map[string]int `json:"by_aircraft"`
}

// UtilizationSplit divides event counts into weekend-touching and
// weekday-only buckets.
type UtilizationSplit struct {
	Weekend UtilizationCount `json:"weekend"`
	Weekday UtilizationCount `json:"weekday"`
}

func (c *UtilizationCount) add(aircraft string) {
	c.Total++
	c.ByAircraft[aircraft]++
}

// WeekendWeekdayUtilization classifies every event (maintenance
// included) as weekend or weekday per the IsWeekend policy and counts
// by aircraft.
func WeekendWeekdayUtilization(events []models.Event) UtilizationSplit {
	split := UtilizationSplit{
		Weekend: UtilizationCount{ByAircraft: make(map[string]int)},
		Weekday: UtilizationCount{ByAircraft: make(map[string]int)},
	}

	for _, evt := range events {
		if IsWeekend(evt.Start, evt.End) {
			split.Weekend.add(evt.Aircraft)
		} else {
			split.Weekday.add(evt.Aircraft)
		}
	}
	return split
}

// AirportUtilization counts events per airport.
func AirportUtilization(events []models.Event) map[string]int {
	results := make(map[string]int)
	for _, evt := range events {
		results[evt.Location]++
	}
	return results
}

// AirportUtilizationByHours sums tach hours per airport. Events
// without a tach reading did not fly and contribute nothing.
func AirportUtilizationByHours(events []models.Event) map[string]float64 {
	results := make(map[string]float64)
	for _, evt := range events {
		if evt.TachValid {
			results[evt.Location] += evt.TachTotal
		}
	}
	return results
}
