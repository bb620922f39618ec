package study

import "time"

// calendarDay returns the local calendar date of now as a UTC date value,
// plus the instant the following local day begins.
func calendarDay(now time.Time, tz *time.Location) (date, next time.Time) {
	local := now.In(tz)
	date = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	// AddDate handles DST correctly, Add(24h) does not
	tomorrow := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz).AddDate(0, 0, 1)
	return date, tomorrow.UTC()
}
