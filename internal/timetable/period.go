package timetable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPeriod is returned when timetable period data cannot be read as a
// positive period number.
var ErrInvalidPeriod = errors.New("timetable: invalid period")

// ClockSentinel is the display value substituted for a period that cannot be
// converted to a clock time. Rendering code shows it instead of failing.
const ClockSentinel = "--:--"

// PeriodClock converts an institutional period number to the zero-padded
// HH:MM clock time at which it starts. Period 1 begins at 09:00, so period p
// starts at hour p+8.
func PeriodClock(period int) (string, error) {
	if period < 1 {
		return "", fmt.Errorf("%w: %d", ErrInvalidPeriod, period)
	}
	return fmt.Sprintf("%02d:00", period+8), nil
}

// PeriodClockLabel converts a raw period value to its clock time for display.
// Malformed or non-positive input yields ClockSentinel rather than an error.
func PeriodClockLabel(raw string) string {
	period, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return ClockSentinel
	}
	clock, err := PeriodClock(period)
	if err != nil {
		return ClockSentinel
	}
	return clock
}

// ParsePeriods expands a comma-separated period set such as "3,4" into the
// bounds of its contiguous inclusive range. Every element must parse as a
// positive integer; an empty set or any malformed element is ErrInvalidPeriod.
func ParsePeriods(raw string) (first, last int, err error) {
	parts := strings.Split(raw, ",")
	periods := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		period, convErr := strconv.Atoi(part)
		if convErr != nil || period < 1 {
			return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, part)
		}
		periods = append(periods, period)
	}
	if len(periods) == 0 {
		return 0, 0, fmt.Errorf("%w: empty period set %q", ErrInvalidPeriod, raw)
	}

	first, last = periods[0], periods[0]
	for _, period := range periods[1:] {
		if period < first {
			first = period
		}
		if period > last {
			last = period
		}
	}
	return first, last, nil
}

var dayNames = [...]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// daySpellings accepts the day-name variants seen in institutional data:
// Korean single characters from the upstream feed alongside English
// abbreviations and full names.
var daySpellings = map[string]time.Weekday{
	"일": time.Sunday, "월": time.Monday, "화": time.Tuesday, "수": time.Wednesday,
	"목": time.Thursday, "금": time.Friday, "토": time.Saturday,
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
	"sunday": time.Sunday, "monday": time.Monday, "tuesday": time.Tuesday,
	"wednesday": time.Wednesday, "thursday": time.Thursday, "friday": time.Friday,
	"saturday": time.Saturday,
}

// DayName returns the abbreviated weekday name for a calendar date, indexed
// from Sunday = 0.
func DayName(date time.Time) string {
	return WeekdayName(date.Weekday())
}

// WeekdayName returns the canonical abbreviated name for a weekday.
func WeekdayName(day time.Weekday) string {
	return dayNames[int(day)%len(dayNames)]
}

// ParseDayName normalizes one of the accepted day-name spellings to a
// time.Weekday. Unknown spellings are an error; callers decide whether the
// surrounding record is dropped or the operation fails.
func ParseDayName(raw string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if day, ok := daySpellings[key]; ok {
		return day, nil
	}
	return time.Sunday, fmt.Errorf("timetable: unknown weekday %q", raw)
}
