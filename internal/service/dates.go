package service

import "time"

// Date arithmetic is done on normalized instants so that results depend only
// on calendar days, never on the time-of-day or sub-day drift of inputs.

// startOfDay truncates t to midnight UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// noonOf pins t to 12:00 UTC. Concentration math samples at noon to avoid
// day-boundary jitter between dose timestamps and query dates.
func noonOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole number of days from a to b, negative when b
// precedes a. Both ends are normalized to midnight first.
func daysBetween(a, b time.Time) int {
	return int(startOfDay(b).Sub(startOfDay(a)).Hours() / 24)
}

// daysBetweenAbs returns the absolute day gap between two dates.
func daysBetweenAbs(a, b time.Time) int {
	d := daysBetween(a, b)
	if d < 0 {
		return -d
	}
	return d
}
