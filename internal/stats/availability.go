package stats

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// ErrUnevenFleet means the fleet cannot be apportioned evenly across
// the airports, which the availability model requires.
var ErrUnevenFleet = errors.New("uneven aircraft distribution")

// dayTally accumulates one calendar day of the availability sweep.
type dayTally struct {
	date         time.Time
	open         bool
	aircraftSeen map[string]bool
	airportUsage map[string]int
}

func (d *dayTally) reset(date time.Time) {
	d.date = date
	d.open = true
	d.aircraftSeen = make(map[string]bool)
	d.airportUsage = make(map[string]int)
}

// AvailabilityByAirportAndWeekday estimates the mean number of
// aircraft available (not in use) per airport per weekday name,
// assuming the fleet rests evenly distributed across the airports.
//
// The sweep walks events by start date, tallying the distinct aircraft
// seen per airport per day. Each day closes with availability =
// baseline - usage per airport; dates with no events at all are
// assumed fully available. Events are sorted by start time on a copy
// before the sweep, so callers need not pre-sort.
func AvailabilityByAirportAndWeekday(events []models.Event, aircraft, airports []string) (map[string]map[string]float64, error) {
	if len(airports) == 0 {
		return nil, fmt.Errorf("%w: no airports", ErrUnevenFleet)
	}
	if len(aircraft)%len(airports) != 0 {
		return nil, fmt.Errorf("%w: %d aircraft across %d airports", ErrUnevenFleet, len(aircraft), len(airports))
	}
	perAirport := len(aircraft) / len(airports)

	ordered := make([]models.Event, len(events))
	copy(ordered, events)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start.Before(ordered[j].Start)
	})

	// airport -> date -> available count
	availableByDate := make(map[string]map[time.Time]int)
	for _, airport := range airports {
		availableByDate[airport] = make(map[time.Time]int)
	}

	var day dayTally

	closeDay := func() {
		for _, airport := range airports {
			availableByDate[airport][day.date] = perAirport - day.airportUsage[airport]
		}
	}

	for _, evt := range ordered {
		date := dateOf(evt.Start)
		if !day.open || !date.Equal(day.date) {
			if day.open {
				closeDay()
				// Dates with no events get the full baseline.
				for x := day.date.AddDate(0, 0, 1); x.Before(date); x = x.AddDate(0, 0, 1) {
					for _, airport := range airports {
						availableByDate[airport][x] = perAirport
					}
				}
			}
			day.reset(date)
		}

		// An aircraft counts once per day no matter how many events
		// it has.
		if !day.aircraftSeen[evt.Aircraft] {
			day.aircraftSeen[evt.Aircraft] = true
			day.airportUsage[evt.Location]++
		}
	}
	if day.open {
		closeDay()
	}

	// Group the per-date counts by weekday name and average.
	means := make(map[string]map[string]float64)
	for _, airport := range airports {
		byWeekday := make(map[string][]int)
		for date, count := range availableByDate[airport] {
			name := date.Weekday().String()
			byWeekday[name] = append(byWeekday[name], count)
		}

		means[airport] = make(map[string]float64)
		for name, counts := range byWeekday {
			sum := 0
			for _, c := range counts {
				sum += c
			}
			means[airport][name] = float64(sum) / float64(len(counts))
		}
	}

	return means, nil
}
