package sqlite

import (
	"time"

	"github.com/example/classroom-reservation/internal/timetable"
)

// The institutional timetable arrives with more than one day-name spelling
// (Korean single characters from the upstream feed, English abbreviations in
// newer exports). Normalizing at the storage boundary keeps the rest of the
// system on a single canonical time.Weekday.
func parseWeekday(raw string) (time.Weekday, error) {
	return timetable.ParseDayName(raw)
}

// formatWeekday returns the canonical stored spelling for a weekday.
func formatWeekday(day time.Weekday) string {
	return timetable.WeekdayName(day)
}
