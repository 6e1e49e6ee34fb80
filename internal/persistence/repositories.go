package persistence

import "context"

// TimetableRepository exposes read access to the institutional timetable.
// The timetable is reference data: seeded once, never written per request.
type TimetableRepository interface {
	ListLecturesForRoom(ctx context.Context, roomID string) ([]LectureSlot, error)
	CountLectures(ctx context.Context) (int, error)
	SeedLectures(ctx context.Context, lectures []LectureSlot) error
}

// ReservationRepository stores ad-hoc room bookings. CreateReservation must
// hold the overlap check and the insert in a single transaction so two
// concurrent bookings for the same room and date cannot both land; the loser
// observes ErrOverlap.
type ReservationRepository interface {
	ListReservations(ctx context.Context, roomID, date string) ([]Reservation, error)
	CreateReservation(ctx context.Context, reservation Reservation) error
}
