package stats

import "github.com/jcjones/flightcircle-statistics/internal/models"

// GatherAircraft returns the distinct aircraft identifiers in the
// event list, in order of first appearance.
func GatherAircraft(events []models.Event) []string {
	seen := make(map[string]bool)
	var aircraft []string
	for _, evt := range events {
		if !seen[evt.Aircraft] {
			seen[evt.Aircraft] = true
			aircraft = append(aircraft, evt.Aircraft)
		}
	}
	return aircraft
}

// GatherLocations returns the distinct airport identifiers in the
// event list, in order of first appearance.
func GatherLocations(events []models.Event) []string {
	seen := make(map[string]bool)
	var locations []string
	for _, evt := range events {
		if !seen[evt.Location] {
			seen[evt.Location] = true
			locations = append(locations, evt.Location)
		}
	}
	return locations
}
