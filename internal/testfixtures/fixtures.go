// Package testfixtures provides deterministic clocks, identifier generators
// and reference data shared by application and persistence tests.
package testfixtures

import (
	"time"

	"github.com/example/classroom-reservation/internal/application"
	"github.com/example/classroom-reservation/internal/persistence"
)

// referenceTime is a Thursday morning, chosen so date based fixtures land on
// a weekday column of the schedule grid.
var referenceTime = time.Date(2025, time.November, 27, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the shared deterministic instant fixtures are built
// around.
func ReferenceTime() time.Time {
	return referenceTime
}

// ReferenceDate returns ReferenceTime formatted as a calendar date.
func ReferenceDate() string {
	return referenceTime.Format("2006-01-02")
}

// Rooms returns a small classroom catalog mirroring the production defaults.
func Rooms() []application.Room {
	return []application.Room{
		{ID: "801", Name: "801호", Capacity: 25, Features: []string{"프로젝터", "화이트보드"}, Type: "일반강의실"},
		{ID: "804", Name: "804호", Capacity: 40, Features: []string{"프로젝터", "음향시설"}, Type: "대형강의실"},
		{ID: "808", Name: "808호", Capacity: 20, Features: []string{"컴퓨터", "프로젝터"}, Type: "컴퓨터실"},
	}
}

// Catalog returns Rooms wrapped in a RoomCatalog.
func Catalog() *application.RoomCatalog {
	return application.NewRoomCatalog(Rooms())
}

// Lectures returns recurring lectures for room 804: a Thursday afternoon
// class over periods 5-6 and a Monday morning class over period 1.
func Lectures() []persistence.LectureSlot {
	return []persistence.LectureSlot{
		{RoomID: "804", Weekday: time.Thursday, Periods: "5,6", Subject: "자료구조", Instructor: "김교수"},
		{RoomID: "804", Weekday: time.Monday, Periods: "1", Subject: "운영체제", Instructor: "이교수"},
	}
}

// Reservation returns a booking for room 804 on the reference date. Fields
// can be adjusted by the caller before use.
func Reservation(id, start, end string) persistence.Reservation {
	return persistence.Reservation{
		ID:        id,
		RoomID:    "804",
		Date:      ReferenceDate(),
		Start:     start,
		End:       end,
		UserName:  "홍길동",
		Purpose:   "스터디",
		CreatedAt: referenceTime,
	}
}
