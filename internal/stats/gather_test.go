package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

func TestGatherAircraftFirstSeenOrder(t *testing.T) {
	events := []models.Event{
		evt(t, "N123AB", "KPAO", models.EventReservation, "2024-01-01 08:00:00", "2024-01-01 10:00:00"),
		evt(t, "N456CD", "KSQL", models.EventReservation, "2024-01-01 09:00:00", "2024-01-01 11:00:00"),
		evt(t, "N123AB", "KSQL", models.EventMaintenance, "2024-01-02 08:00:00", "2024-01-02 10:00:00"),
		evt(t, "N789EF", "KPAO", models.EventReservation, "2024-01-03 08:00:00", "2024-01-03 10:00:00"),
	}

	assert.Equal(t, []string{"N123AB", "N456CD", "N789EF"}, GatherAircraft(events))
}

func TestGatherLocationsFirstSeenOrder(t *testing.T) {
	events := []models.Event{
		evt(t, "N123AB", "KPAO", models.EventReservation, "2024-01-01 08:00:00", "2024-01-01 10:00:00"),
		evt(t, "N456CD", "KSQL", models.EventReservation, "2024-01-01 09:00:00", "2024-01-01 11:00:00"),
		evt(t, "N123AB", "KPAO", models.EventReservation, "2024-01-02 08:00:00", "2024-01-02 10:00:00"),
		evt(t, "N789EF", "KOAK", models.EventReservation, "2024-01-03 08:00:00", "2024-01-03 10:00:00"),
	}

	assert.Equal(t, []string{"KPAO", "KSQL", "KOAK"}, GatherLocations(events))
}

func TestGatherEmpty(t *testing.T) {
	assert.Empty(t, GatherAircraft(nil))
	assert.Empty(t, GatherLocations(nil))
}
