package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/classroom-reservation/internal/persistence"
	"github.com/example/classroom-reservation/internal/timetable"
)

// TimetableRepository captures the lecture reads needed by the service.
type TimetableRepository interface {
	ListLecturesForRoom(ctx context.Context, roomID string) ([]persistence.LectureSlot, error)
}

// ReservationReader captures the reservation reads needed to render a schedule.
type ReservationReader interface {
	ListReservations(ctx context.Context, roomID, date string) ([]persistence.Reservation, error)
}

// ScheduleService assembles the daily view of one room from its recurring
// lectures and ad-hoc reservations.
type ScheduleService struct {
	lectures     TimetableRepository
	reservations ReservationReader
	catalog      *RoomCatalog
	logger       *slog.Logger
}

// NewScheduleService wires dependencies for schedule reads.
func NewScheduleService(lectures TimetableRepository, reservations ReservationReader, catalog *RoomCatalog, logger *slog.Logger) *ScheduleService {
	return &ScheduleService{
		lectures:     lectures,
		reservations: reservations,
		catalog:      catalog,
		logger:       defaultLogger(logger),
	}
}

// GetRoomSchedule returns the composed schedule for a room on a calendar date.
func (s *ScheduleService) GetRoomSchedule(ctx context.Context, roomID, date string) (timetable.View, error) {
	if s == nil {
		return timetable.View{}, fmt.Errorf("ScheduleService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "schedule", "get_room_schedule", "room_id", roomID, "date", date)

	vErr := &ValidationError{}
	var day time.Time
	if strings.TrimSpace(date) == "" {
		vErr.add("date", "date 쿼리 파라미터가 필요합니다.")
	} else {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			vErr.add("date", "날짜 형식이 올바르지 않습니다. (YYYY-MM-DD)")
		} else {
			day = parsed
		}
	}
	if vErr.HasErrors() {
		return timetable.View{}, vErr
	}

	if _, ok := s.catalog.Lookup(roomID); !ok {
		return timetable.View{}, ErrNotFound
	}

	lectureRows, err := s.lectures.ListLecturesForRoom(ctx, roomID)
	if err != nil {
		logger.Error("failed to load timetable", "error", err)
		return timetable.View{}, fmt.Errorf("load timetable for room %s: %w", roomID, err)
	}

	reservationRows, err := s.reservations.ListReservations(ctx, roomID, date)
	if err != nil {
		logger.Error("failed to load reservations", "error", err)
		return timetable.View{}, fmt.Errorf("load reservations for room %s: %w", roomID, err)
	}

	lectures := make([]timetable.LectureSlot, 0, len(lectureRows))
	for _, row := range lectureRows {
		lectures = append(lectures, timetable.LectureSlot{
			RoomID:     row.RoomID,
			Weekday:    row.Weekday,
			Periods:    row.Periods,
			Subject:    row.Subject,
			Instructor: row.Instructor,
		})
	}

	reservations := make([]timetable.Reservation, 0, len(reservationRows))
	for _, row := range reservationRows {
		reservations = append(reservations, timetable.Reservation{
			ID:       row.ID,
			RoomID:   row.RoomID,
			Date:     row.Date,
			Start:    row.Start,
			End:      row.End,
			UserName: row.UserName,
			Purpose:  row.Purpose,
		})
	}

	view, dropped := timetable.Compose(roomID, day, lectures, reservations)
	for _, slot := range dropped {
		logger.Warn("lecture periods unreadable, listed with sentinel times and left off the grid",
			"subject", slot.Subject, "weekday", slot.Weekday.String(), "periods", slot.Periods)
	}

	return view, nil
}
