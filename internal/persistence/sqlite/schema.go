package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; schema_version records the last applied
// index so restarts only run what is new.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS timetable (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		room_id TEXT NOT NULL,
		weekday TEXT NOT NULL,
		periods TEXT NOT NULL,
		subject TEXT NOT NULL,
		instructor TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_timetable_room ON timetable (room_id)`,
	`CREATE TABLE IF NOT EXISTS reservations (
		id TEXT PRIMARY KEY,
		room_id TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		user_name TEXT NOT NULL,
		purpose TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		CHECK (start_time < end_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reservations_room_date ON reservations (room_id, date, start_time)`,
}

// Migrate creates the schema_version table and applies any pending
// migrations inside a single transaction per statement batch.
func Migrate(ctx context.Context, pool *ConnectionPool) error {
	if _, err := pool.db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	return pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		var version sql.NullInt64
		if err := tx.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version); err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}

		applied := 0
		if version.Valid {
			applied = int(version.Int64)
		}

		for i := applied; i < len(migrations); i++ {
			if _, err := tx.Exec(migrations[i]); err != nil {
				return fmt.Errorf("migration %d failed: %w", i+1, err)
			}
			if _, err := tx.Exec(`INSERT INTO schema_version (version) VALUES (?)`, i+1); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", i+1, err)
			}
		}
		return nil
	})
}
