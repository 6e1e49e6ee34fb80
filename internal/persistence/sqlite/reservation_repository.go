package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/example/classroom-reservation/internal/persistence"
)

// ReservationRepository implements persistence.ReservationRepository using
// SQLite.
type ReservationRepository struct {
	pool  *ConnectionPool
	retry RetryConfig
}

// NewReservationRepository creates a SQLite-backed reservation repository.
func NewReservationRepository(pool *ConnectionPool) *ReservationRepository {
	return &ReservationRepository{pool: pool, retry: DefaultRetryConfig()}
}

// ListReservations returns every reservation for one room and date, ordered
// by start time.
func (r *ReservationRepository) ListReservations(ctx context.Context, roomID, date string) ([]persistence.Reservation, error) {
	query := `
		SELECT id, room_id, date, start_time, end_time, user_name, purpose, created_at
		FROM reservations
		WHERE room_id = ? AND date = ?
		ORDER BY start_time, id
	`

	rows, err := r.pool.db.QueryContext(ctx, query, roomID, date)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var reservations []persistence.Reservation
	for rows.Next() {
		var reservation persistence.Reservation
		var createdAt string
		if err := rows.Scan(
			&reservation.ID,
			&reservation.RoomID,
			&reservation.Date,
			&reservation.Start,
			&reservation.End,
			&reservation.UserName,
			&reservation.Purpose,
			&createdAt,
		); err != nil {
			return nil, mapSQLiteError(err)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("reservation %s has a malformed created_at %q: %w", reservation.ID, createdAt, err)
		}
		reservation.CreatedAt = ts
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}

	return reservations, nil
}

// CreateReservation inserts a booking. The overlap check runs inside the
// same write transaction as the insert; SQLite serializes writers, so two
// concurrent requests for the same room and date cannot both pass the check.
// The loser observes persistence.ErrOverlap.
func (r *ReservationRepository) CreateReservation(ctx context.Context, reservation persistence.Reservation) error {
	return WithRetry(ctx, r.retry, func() error {
		return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
			var exists int
			err := tx.QueryRow(`
				SELECT 1
				FROM reservations
				WHERE room_id = ?
				  AND date = ?
				  AND NOT (end_time <= ? OR start_time >= ?)
				LIMIT 1
			`, reservation.RoomID, reservation.Date, reservation.Start, reservation.End).Scan(&exists)
			switch {
			case err == nil:
				return persistence.ErrOverlap
			case !errors.Is(err, sql.ErrNoRows):
				return mapSQLiteError(err)
			}

			createdAt := reservation.CreatedAt
			if createdAt.IsZero() {
				createdAt = time.Now().UTC()
			}

			_, err = tx.Exec(`
				INSERT INTO reservations (id, room_id, date, start_time, end_time, user_name, purpose, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`,
				reservation.ID,
				reservation.RoomID,
				reservation.Date,
				reservation.Start,
				reservation.End,
				reservation.UserName,
				reservation.Purpose,
				createdAt.Format(time.RFC3339),
			)
			if err != nil {
				return mapSQLiteError(err)
			}
			return nil
		})
	})
}
