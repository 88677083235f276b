package stats

import (
	"math"
	"sort"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// HistogramBin is one bucket of the reservation-length histogram.
type HistogramBin struct {
	Hours int `json:"hours"`
	Count int `json:"count"`
}

// LengthHistogram buckets non-maintenance events by duration in whole
// hours, rounded up: a reservation of any fraction of an hour consumes
// a full hour of capacity. Bins are returned in ascending hour order.
func LengthHistogram(events []models.Event) []HistogramBin {
	counts := make(map[int]int)
	for _, evt := range events {
		if evt.IsMaintenance() {
			continue
		}
		hours := int(math.Ceil(evt.End.Sub(evt.Start).Seconds() / 3600))
		counts[hours]++
	}

	bins := make([]HistogramBin, 0, len(counts))
	for hours, count := range counts {
		bins = append(bins, HistogramBin{Hours: hours, Count: count})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Hours < bins[j].Hours })
	return bins
}
