package models

import (
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the fixed timestamp format used by scheduler
// exports. It is not configurable.
const TimestampLayout = "2006-01-02 15:04:05"

// EventType classifies what occupied the aircraft for the interval.
type EventType string

const (
	EventReservation EventType = "Reservation"
	EventMaintenance EventType = "Maintenance"
)

// Event is one reservation or maintenance occurrence for an aircraft
// at an airport over a time interval. Events are immutable input; the
// aggregators never modify them.
type Event struct {
	Aircraft  string
	Location  string
	Start     time.Time
	End       time.Time
	Type      EventType
	TachTotal float64 // hours flown during the event
	TachValid bool    // false when the record had no tach reading (aircraft did not fly)
}

// IsMaintenance reports whether the event is a maintenance window.
// Maintenance occupies the aircraft but does not count as use.
func (e Event) IsMaintenance() bool {
	return e.Type == EventMaintenance
}

// Field names as they appear in the scheduler export header row.
const (
	FieldAircraft  = "Aircraft"
	FieldLocation  = "Location"
	FieldStart     = "Start"
	FieldEnd       = "End"
	FieldType      = "Type"
	FieldTachTotal = "Tach Total"
)

// ParseRecord builds an Event from one header-keyed row of the input
// table. A blank Tach Total is a valid record for an aircraft that did
// not fly; an unparseable timestamp or tach value is not.
func ParseRecord(record map[string]string) (Event, error) {
	start, err := time.Parse(TimestampLayout, record[FieldStart])
	if err != nil {
		return Event{}, fmt.Errorf("invalid start timestamp %q: %w", record[FieldStart], err)
	}

	end, err := time.Parse(TimestampLayout, record[FieldEnd])
	if err != nil {
		return Event{}, fmt.Errorf("invalid end timestamp %q: %w", record[FieldEnd], err)
	}

	evt := Event{
		Aircraft: record[FieldAircraft],
		Location: record[FieldLocation],
		Start:    start,
		End:      end,
		Type:     EventType(record[FieldType]),
	}

	if raw := record[FieldTachTotal]; raw != "" {
		tach, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Event{}, fmt.Errorf("invalid tach total %q: %w", raw, err)
		}
		evt.TachTotal = tach
		evt.TachValid = true
	}

	return evt, nil
}
