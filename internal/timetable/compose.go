package timetable

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// LectureSlot is one recurring class meeting read from the institutional
// timetable. It is reference data: composed into views, never written.
type LectureSlot struct {
	RoomID     string
	Weekday    time.Weekday
	Periods    string
	Subject    string
	Instructor string
}

// Reservation is one ad-hoc booking scoped to a single room and date. Start
// and End are zero-padded HH:MM bounds of a half-open interval.
type Reservation struct {
	ID       string
	RoomID   string
	Date     string
	Start    string
	End      string
	UserName string
	Purpose  string
}

// LectureOccurrence is a lecture expanded onto a concrete weekday with its
// display interval. The interval runs from the start of the first occupied
// period to the start of the period after the last occupied one, so a class
// on periods 3-4 displays as 11:00-13:00.
type LectureOccurrence struct {
	Subject     string
	Instructor  string
	Weekday     time.Weekday
	FirstPeriod int
	LastPeriod  int
	Start       string
	End         string
}

// CellKind identifies what occupies a grid cell.
type CellKind string

const (
	// CellEmpty marks a cell with neither a lecture nor a reservation.
	CellEmpty CellKind = "empty"
	// CellLecture marks a cell covered by a recurring class meeting.
	CellLecture CellKind = "lecture"
	// CellReservation marks a cell covered by an ad-hoc reservation.
	CellReservation CellKind = "reservation"
)

// Cell is one weekday column entry of a grid row.
type Cell struct {
	Kind   CellKind
	Title  string
	Detail string
}

// GridRow is one hourly slot row of the weekly grid.
type GridRow struct {
	Slot  string
	Cells []Cell
}

// View is the merged, read-only schedule for one room and date.
type View struct {
	Date         string
	RoomID       string
	Weekday      string
	Lectures     []LectureOccurrence
	Reservations []Reservation
	Grid         []GridRow
}

// gridDays are the weekday columns of the fixed grid, Monday through Friday.
var gridDays = [...]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}

// GridSlots returns the fixed hourly slot labels of the weekly grid,
// 09:00 through 17:00. Each label names the half-open hour it starts.
func GridSlots() []string {
	slots := make([]string, 0, 9)
	for period := 1; period <= 9; period++ {
		clock, _ := PeriodClock(period)
		slots = append(slots, clock)
	}
	return slots
}

// Compose merges the room's recurring lectures and the date's reservations
// into a View. Lectures whose period data cannot be expanded are returned in
// dropped and omitted from the grid, but stay in the lecture list with
// ClockSentinel standing in for each unreadable interval bound; callers log
// them. Inputs are not mutated and identical inputs produce identical views.
func Compose(roomID string, date time.Time, lectures []LectureSlot, reservations []Reservation) (View, []LectureSlot) {
	weekday := date.Weekday()

	occurrences := make([]LectureOccurrence, 0, len(lectures))
	listed := make([]LectureOccurrence, 0, len(lectures))
	var dropped []LectureSlot
	for _, lecture := range lectures {
		occurrence, err := expandLecture(lecture)
		if err != nil {
			dropped = append(dropped, lecture)
			listed = append(listed, sentinelOccurrence(lecture))
			continue
		}
		occurrences = append(occurrences, occurrence)
		listed = append(listed, occurrence)
	}

	byWeekdayStart := func(entries []LectureOccurrence) func(i, j int) bool {
		return func(i, j int) bool {
			if entries[i].Weekday != entries[j].Weekday {
				return entries[i].Weekday < entries[j].Weekday
			}
			if entries[i].Start != entries[j].Start {
				return entries[i].Start < entries[j].Start
			}
			return entries[i].Subject < entries[j].Subject
		}
	}
	sort.SliceStable(occurrences, byWeekdayStart(occurrences))
	sort.SliceStable(listed, byWeekdayStart(listed))

	todays := make([]LectureOccurrence, 0, len(listed))
	for _, occurrence := range listed {
		if occurrence.Weekday == weekday {
			todays = append(todays, occurrence)
		}
	}

	ordered := make([]Reservation, len(reservations))
	copy(ordered, reservations)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].ID < ordered[j].ID
	})

	view := View{
		Date:         date.Format("2006-01-02"),
		RoomID:       roomID,
		Weekday:      DayName(date),
		Lectures:     todays,
		Reservations: ordered,
		Grid:         buildGrid(weekday, occurrences, ordered),
	}
	return view, dropped
}

// expandLecture derives the display interval of a lecture from its period
// set: from the start of the first occupied period to the start of the
// period after the last occupied one.
func expandLecture(lecture LectureSlot) (LectureOccurrence, error) {
	first, last, err := ParsePeriods(lecture.Periods)
	if err != nil {
		return LectureOccurrence{}, err
	}
	start, err := PeriodClock(first)
	if err != nil {
		return LectureOccurrence{}, err
	}
	end, err := PeriodClock(last + 1)
	if err != nil {
		return LectureOccurrence{}, err
	}
	return LectureOccurrence{
		Subject:     lecture.Subject,
		Instructor:  lecture.Instructor,
		Weekday:     lecture.Weekday,
		FirstPeriod: first,
		LastPeriod:  last,
		Start:       start,
		End:         end,
	}, nil
}

// sentinelOccurrence builds the list entry for a lecture whose period set
// cannot be expanded. Each bound that still reads as a period keeps its
// clock time and the unreadable ones show ClockSentinel, so the entry stays
// visible in the daily list even though the grid skips it.
func sentinelOccurrence(lecture LectureSlot) LectureOccurrence {
	parts := make([]string, 0, 2)
	for _, part := range strings.Split(lecture.Periods, ",") {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	start, end := ClockSentinel, ClockSentinel
	if len(parts) > 0 {
		start = PeriodClockLabel(parts[0])
		if last, err := strconv.Atoi(parts[len(parts)-1]); err == nil && last >= 1 {
			if clock, clockErr := PeriodClock(last + 1); clockErr == nil {
				end = clock
			}
		}
	}

	return LectureOccurrence{
		Subject:    lecture.Subject,
		Instructor: lecture.Instructor,
		Weekday:    lecture.Weekday,
		Start:      start,
		End:        end,
	}
}

// buildGrid renders the fixed Mon-Fri grid. For each cell a lecture
// occurrence takes priority over a reservation; reservations appear only in
// the column matching the requested date's weekday, since they are bound to
// that exact date.
func buildGrid(weekday time.Weekday, occurrences []LectureOccurrence, reservations []Reservation) []GridRow {
	rows := make([]GridRow, 0, 9)
	for _, slot := range GridSlots() {
		row := GridRow{Slot: slot, Cells: make([]Cell, len(gridDays))}
		for i, day := range gridDays {
			row.Cells[i] = cellAt(slot, day, weekday, occurrences, reservations)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellAt(slot string, day, weekday time.Weekday, occurrences []LectureOccurrence, reservations []Reservation) Cell {
	for _, occurrence := range occurrences {
		if occurrence.Weekday != day {
			continue
		}
		if slot >= occurrence.Start && slot < occurrence.End {
			return Cell{Kind: CellLecture, Title: occurrence.Subject, Detail: occurrence.Instructor}
		}
	}
	if day == weekday {
		for _, reservation := range reservations {
			if slot >= reservation.Start && slot < reservation.End {
				return Cell{
					Kind:   CellReservation,
					Title:  reservation.UserName,
					Detail: reservation.Start + " ~ " + reservation.End,
				}
			}
		}
	}
	return Cell{Kind: CellEmpty}
}
