package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

func TestUsageByWeekday(t *testing.T) {
	events := []models.Event{
		// Monday 08:00 through Thursday 08:00 touches Mon, Tue, Wed.
		evt(t, "N123AB", "KPAO", models.EventReservation, "2024-01-01 08:00:00", "2024-01-04 08:00:00"),
		// A second Monday flight for the same aircraft.
		evt(t, "N123AB", "KPAO", models.EventReservation, "2024-01-08 09:00:00", "2024-01-08 11:00:00"),
	}

	usage := UsageByWeekday(events)

	assert.Equal(t, map[string]int{
		"Monday":    2,
		"Tuesday":   1,
		"Wednesday": 1,
	}, usage["N123AB"])
}

func TestUsageByWeekdaySkipsMaintenance(t *testing.T) {
	events := []models.Event{
		evt(t, "N123AB", "KPAO", models.EventMaintenance, "2024-01-01 08:00:00", "2024-01-05 08:00:00"),
	}

	usage := UsageByWeekday(events)
	assert.NotContains(t, usage, "N123AB")
}

func TestUsageByWeekdayZeroLengthEvent(t *testing.T) {
	events := []models.Event{
		evt(t, "N123AB", "KPAO", models.EventReservation, "2024-01-01 08:00:00", "2024-01-01 08:00:00"),
	}

	// The half-open walk over [start, end) never runs.
	assert.Empty(t, UsageByWeekday(events))
}
