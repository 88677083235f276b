package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jcjones/flightcircle-statistics/internal/models"
)

// evt builds a test event from layout-formatted timestamps.
func evt(t *testing.T, aircraft, location string, typ models.EventType, start, end string) models.Event {
	t.Helper()

	s, err := time.Parse(models.TimestampLayout, start)
	require.NoError(t, err)
	e, err := time.Parse(models.TimestampLayout, end)
	require.NoError(t, err)

	return models.Event{
		Aircraft: aircraft,
		Location: location,
		Start:    s,
		End:      e,
		Type:     typ,
	}
}

// flownEvt is evt with a tach reading attached.
func flownEvt(t *testing.T, aircraft, location string, start, end string, tach float64) models.Event {
	t.Helper()

	e := evt(t, aircraft, location, models.EventReservation, start, end)
	e.TachTotal = tach
	e.TachValid = true
	return e
}

func ts(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(models.TimestampLayout, value)
	require.NoError(t, err)
	return parsed
}
