package stats

import (
	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// DaysBetweenUsage collects, per aircraft, the idle gaps between
// consecutive events in fractional days. Events must be supplied in
// chronological order per aircraft; the scan follows input order.
//
// A gap is skipped when the new event starts on the same calendar date
// the previous one ended (immediate re-use), and when either side is a
// maintenance window. The previous-event marker always advances to the
// current event, recorded gap or not.
func DaysBetweenUsage(events []models.Event) map[string][]float64 {
	gaps := make(map[string][]float64)
	previous := make(map[string]models.Event)

	for _, evt := range events {
		prev, ok := previous[evt.Aircraft]
		previous[evt.Aircraft] = evt
		if !ok {
			continue
		}

		if dateOf(evt.Start).Equal(dateOf(prev.End)) {
			continue
		}
		if evt.IsMaintenance() || prev.IsMaintenance() {
			continue
		}

		delta := evt.Start.Sub(prev.End)
		if delta < 0 {
			delta = -delta
		}
		gaps[evt.Aircraft] = append(gaps[evt.Aircraft], delta.Hours()/24)
	}

	return gaps
}
