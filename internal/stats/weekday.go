package stats

import "github.com/jcjones/flightcircle-statistics/internal/models"

// UsageByWeekday counts, per aircraft, how many days of each weekday
// name its non-maintenance events touch. The walk over [start, end) is
// half-open and steps one day at a time, so a multi-day event
// contributes one increment per day touched and a zero-length event
// contributes nothing.
func UsageByWeekday(events []models.Event) map[string]map[string]int {
	byAircraft := make(map[string]map[string]int)

	for _, evt := range events {
		if evt.IsMaintenance() {
			continue
		}

		for x := evt.Start; x.Before(evt.End); x = x.AddDate(0, 0, 1) {
			counts, ok := byAircraft[evt.Aircraft]
			if !ok {
				counts = make(map[string]int)
				byAircraft[evt.Aircraft] = counts
			}
			counts[x.Weekday().String()]++
		}
	}

	return byAircraft
}
