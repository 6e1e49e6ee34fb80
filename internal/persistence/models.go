package persistence

import "time"

// LectureSlot is one recurring class meeting row of the institutional
// timetable. The weekday is normalized to time.Weekday at the repository
// boundary regardless of the spelling stored upstream; Periods keeps the raw
// comma-separated period set for the composer to expand.
type LectureSlot struct {
	ID         int64
	RoomID     string
	Weekday    time.Weekday
	Periods    string
	Subject    string
	Instructor string
}

// Reservation is one ad-hoc booking row. Date is YYYY-MM-DD; Start and End
// are zero-padded HH:MM bounds of a half-open interval.
type Reservation struct {
	ID        string
	RoomID    string
	Date      string
	Start     string
	End       string
	UserName  string
	Purpose   string
	CreatedAt time.Time
}
