package stats

import "time"

func isWeekendDay(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

// dateOf truncates a timestamp to its calendar date (midnight).
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsWeekend reports whether the interval [start, end] touches a
// Saturday or Sunday. Short and long intervals take fast paths: a
// sub-day interval with weekday endpoints cannot reach a weekend, and
// any span over six days must include one. Everything in between is
// scanned a day at a time.
func IsWeekend(start, end time.Time) bool {
	if isWeekendDay(start.Weekday()) || isWeekendDay(end.Weekday()) {
		return true
	}
	if end.Sub(start) < 24*time.Hour {
		return false
	}
	if end.Sub(start) > 6*24*time.Hour {
		return true
	}

	for x := start; x.Before(end); x = x.AddDate(0, 0, 1) {
		if isWeekendDay(x.Weekday()) {
			return true
		}
	}
	return false
}
