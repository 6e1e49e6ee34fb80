package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/classroom-reservation/internal/persistence"
)

// TimetableRepository implements persistence.TimetableRepository using SQLite.
type TimetableRepository struct {
	pool *ConnectionPool
}

// NewTimetableRepository creates a SQLite-backed timetable repository.
func NewTimetableRepository(pool *ConnectionPool) *TimetableRepository {
	return &TimetableRepository{pool: pool}
}

// ListLecturesForRoom returns every recurring lecture for a room across all
// weekdays, ordered by weekday then period set. Rows with an unreadable
// weekday are skipped; the composer handles malformed period data itself.
func (r *TimetableRepository) ListLecturesForRoom(ctx context.Context, roomID string) ([]persistence.LectureSlot, error) {
	query := `
		SELECT id, room_id, weekday, periods, subject, instructor
		FROM timetable
		WHERE room_id = ?
		ORDER BY weekday, periods, id
	`

	rows, err := r.pool.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, mapSQLiteError(err)
	}
	defer rows.Close()

	var lectures []persistence.LectureSlot
	for rows.Next() {
		var lecture persistence.LectureSlot
		var weekday string
		if err := rows.Scan(&lecture.ID, &lecture.RoomID, &weekday, &lecture.Periods, &lecture.Subject, &lecture.Instructor); err != nil {
			return nil, mapSQLiteError(err)
		}
		day, err := parseWeekday(weekday)
		if err != nil {
			continue
		}
		lecture.Weekday = day
		lectures = append(lectures, lecture)
	}

	if err := rows.Err(); err != nil {
		return nil, mapSQLiteError(err)
	}

	return lectures, nil
}

// CountLectures returns the number of timetable rows.
func (r *TimetableRepository) CountLectures(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM timetable`).Scan(&count); err != nil {
		return 0, mapSQLiteError(err)
	}
	return count, nil
}

// SeedLectures bulk-inserts timetable rows. All rows land in one transaction
// so a failed seed leaves the table untouched.
func (r *TimetableRepository) SeedLectures(ctx context.Context, lectures []persistence.LectureSlot) error {
	if len(lectures) == 0 {
		return nil
	}

	return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO timetable (room_id, weekday, periods, subject, instructor)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare seed statement: %w", err)
		}
		defer stmt.Close()

		for _, lecture := range lectures {
			if _, err := stmt.Exec(lecture.RoomID, formatWeekday(lecture.Weekday), lecture.Periods, lecture.Subject, lecture.Instructor); err != nil {
				return mapSQLiteError(err)
			}
		}
		return nil
	})
}
