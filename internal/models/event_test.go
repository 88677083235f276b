package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	record := map[string]string{
		FieldAircraft:  "N123AB",
		FieldLocation:  "KPAO",
		FieldStart:     "2024-01-05 10:00:00",
		FieldEnd:       "2024-01-05 12:30:00",
		FieldType:      "Reservation",
		FieldTachTotal: "1.7",
	}

	evt, err := ParseRecord(record)
	require.NoError(t, err)

	assert.Equal(t, "N123AB", evt.Aircraft)
	assert.Equal(t, "KPAO", evt.Location)
	assert.Equal(t, time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), evt.Start)
	assert.Equal(t, time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC), evt.End)
	assert.Equal(t, EventReservation, evt.Type)
	assert.True(t, evt.TachValid)
	assert.InDelta(t, 1.7, evt.TachTotal, 1e-9)
	assert.False(t, evt.IsMaintenance())
}

func TestParseRecordBlankTach(t *testing.T) {
	record := map[string]string{
		FieldAircraft:  "N123AB",
		FieldLocation:  "KPAO",
		FieldStart:     "2024-01-05 10:00:00",
		FieldEnd:       "2024-01-05 12:00:00",
		FieldType:      "Maintenance",
		FieldTachTotal: "",
	}

	evt, err := ParseRecord(record)
	require.NoError(t, err)

	assert.False(t, evt.TachValid)
	assert.True(t, evt.IsMaintenance())
}

func TestParseRecordErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutation func(map[string]string)
	}{
		{
			name:     "bad start timestamp",
			mutation: func(r map[string]string) { r[FieldStart] = "01/05/2024 10:00" },
		},
		{
			name:     "bad end timestamp",
			mutation: func(r map[string]string) { r[FieldEnd] = "not a time" },
		},
		{
			name:     "bad tach total",
			mutation: func(r map[string]string) { r[FieldTachTotal] = "3.5h" },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			record := map[string]string{
				FieldAircraft:  "N123AB",
				FieldLocation:  "KPAO",
				FieldStart:     "2024-01-05 10:00:00",
				FieldEnd:       "2024-01-05 12:00:00",
				FieldType:      "Reservation",
				FieldTachTotal: "1.7",
			}
			tc.mutation(record)

			_, err := ParseRecord(record)
			assert.Error(t, err)
		})
	}
}
