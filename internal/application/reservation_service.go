package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/classroom-reservation/internal/booking"
	"github.com/example/classroom-reservation/internal/persistence"
)

// ReservationRepository captures the persistence interactions needed by the service.
type ReservationRepository interface {
	ListReservations(ctx context.Context, roomID, date string) ([]persistence.Reservation, error)
	CreateReservation(ctx context.Context, reservation persistence.Reservation) error
}

// CreateReservationInput carries a reservation request into the service.
type CreateReservationInput struct {
	RoomID   string
	Date     string
	Start    string
	End      string
	UserName string
	Purpose  string
}

// ReservationService validates reservation requests and writes accepted ones.
type ReservationService struct {
	reservations ReservationRepository
	catalog      *RoomCatalog
	idGenerator  func() string
	now          func() time.Time
	logger       *slog.Logger
}

// NewReservationService wires dependencies for reservation operations.
func NewReservationService(reservations ReservationRepository, catalog *RoomCatalog, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ReservationService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ReservationService{
		reservations: reservations,
		catalog:      catalog,
		idGenerator:  idGenerator,
		now:          now,
		logger:       defaultLogger(logger),
	}
}

// CreateReservation validates the request, rejects overlapping bookings and
// persists the reservation. The repository re-checks the overlap inside its
// write transaction, so two concurrent conflicting requests cannot both land.
func (s *ReservationService) CreateReservation(ctx context.Context, input CreateReservationInput) (persistence.Reservation, error) {
	if s == nil {
		return persistence.Reservation{}, fmt.Errorf("ReservationService is nil")
	}
	logger := serviceLogger(ctx, s.logger, "reservation", "create_reservation",
		"room_id", input.RoomID, "date", input.Date)

	request := booking.Request{
		RoomID:   input.RoomID,
		Date:     input.Date,
		Start:    input.Start,
		End:      input.End,
		UserName: input.UserName,
		Purpose:  input.Purpose,
	}
	if rejection := booking.Validate(request); rejection != nil {
		vErr := &ValidationError{Reason: rejection.Reason}
		vErr.add(rejection.Field, rejectionMessage(*rejection))
		return persistence.Reservation{}, vErr
	}

	if _, ok := s.catalog.Lookup(strings.TrimSpace(input.RoomID)); !ok {
		return persistence.Reservation{}, ErrNotFound
	}

	existing, err := s.reservations.ListReservations(ctx, input.RoomID, input.Date)
	if err != nil {
		logger.Error("failed to load existing reservations", "error", err)
		return persistence.Reservation{}, fmt.Errorf("load reservations for room %s: %w", input.RoomID, err)
	}

	intervals := make([]booking.Interval, 0, len(existing))
	for _, row := range existing {
		intervals = append(intervals, booking.Interval{Start: row.Start, End: row.End})
	}
	candidate := booking.Interval{Start: strings.TrimSpace(input.Start), End: strings.TrimSpace(input.End)}
	if booking.HasConflict(intervals, candidate) {
		logger.Info("reservation rejected", "reason", "conflict")
		return persistence.Reservation{}, ErrConflict
	}

	reservation := persistence.Reservation{
		ID:        s.idGenerator(),
		RoomID:    strings.TrimSpace(input.RoomID),
		Date:      strings.TrimSpace(input.Date),
		Start:     candidate.Start,
		End:       candidate.End,
		UserName:  strings.TrimSpace(input.UserName),
		Purpose:   strings.TrimSpace(input.Purpose),
		CreatedAt: s.now(),
	}

	if err := s.reservations.CreateReservation(ctx, reservation); err != nil {
		if errors.Is(err, persistence.ErrOverlap) {
			logger.Info("reservation rejected", "reason", "conflict")
			return persistence.Reservation{}, ErrConflict
		}
		logger.Error("failed to persist reservation", "error", err)
		return persistence.Reservation{}, fmt.Errorf("persist reservation: %w", err)
	}

	logger.Info("reservation created", "reservation_id", reservation.ID,
		"start_time", reservation.Start, "end_time", reservation.End)
	return reservation, nil
}

func rejectionMessage(rejection booking.Rejection) string {
	switch rejection.Reason {
	case booking.ReasonInvalidOrdering:
		return "종료 시간은 시작 시간보다 늦어야 합니다."
	default:
		return "필수 입력 항목입니다."
	}
}
