package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/classroom-reservation/internal/persistence"
)

func newTestPool(t *testing.T) *ConnectionPool {
	t.Helper()

	pool, err := NewConnectionPool(filepath.Join(t.TempDir(), "reservation.db"))
	if err != nil {
		t.Fatalf("failed to open pool: %v", err)
	}
	t.Cleanup(func() { _ = pool.Close() })

	if err := Migrate(context.Background(), pool); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return pool
}

func TestMigrateIsIdempotent(t *testing.T) {
	t.Parallel()

	pool := newTestPool(t)
	if err := Migrate(context.Background(), pool); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		t.Fatalf("ping failed: %v", err)
	}
}

func TestTimetableRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newTestPool(t)
	repo := NewTimetableRepository(pool)

	lectures := []persistence.LectureSlot{
		{RoomID: "804", Weekday: time.Wednesday, Periods: "3,4", Subject: "자료구조", Instructor: "김교수"},
		{RoomID: "804", Weekday: time.Thursday, Periods: "1,2", Subject: "운영체제", Instructor: "이교수"},
		{RoomID: "801", Weekday: time.Monday, Periods: "5", Subject: "이산수학", Instructor: "박교수"},
	}
	if err := repo.SeedLectures(ctx, lectures); err != nil {
		t.Fatalf("SeedLectures failed: %v", err)
	}

	t.Run("counts seeded rows", func(t *testing.T) {
		count, err := repo.CountLectures(ctx)
		if err != nil {
			t.Fatalf("CountLectures failed: %v", err)
		}
		if count != 3 {
			t.Errorf("CountLectures = %d, want 3", count)
		}
	})

	t.Run("lists only the requested room", func(t *testing.T) {
		got, err := repo.ListLecturesForRoom(ctx, "804")
		if err != nil {
			t.Fatalf("ListLecturesForRoom failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		for _, lecture := range got {
			if lecture.RoomID != "804" {
				t.Errorf("unexpected room %q in result", lecture.RoomID)
			}
		}
	})

	t.Run("normalizes upstream weekday spellings", func(t *testing.T) {
		if _, err := pool.DB().Exec(
			`INSERT INTO timetable (room_id, weekday, periods, subject, instructor) VALUES (?, ?, ?, ?, ?)`,
			"803", "수", "6,7", "데이터베이스", "최교수"); err != nil {
			t.Fatalf("raw insert failed: %v", err)
		}

		got, err := repo.ListLecturesForRoom(ctx, "803")
		if err != nil {
			t.Fatalf("ListLecturesForRoom failed: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("len = %d, want 1", len(got))
		}
		if got[0].Weekday != time.Wednesday {
			t.Errorf("weekday = %v, want Wednesday", got[0].Weekday)
		}
	})

	t.Run("skips rows with unknown weekday", func(t *testing.T) {
		if _, err := pool.DB().Exec(
			`INSERT INTO timetable (room_id, weekday, periods, subject, instructor) VALUES (?, ?, ?, ?, ?)`,
			"807", "someday", "1", "미지정", ""); err != nil {
			t.Fatalf("raw insert failed: %v", err)
		}

		got, err := repo.ListLecturesForRoom(ctx, "807")
		if err != nil {
			t.Fatalf("ListLecturesForRoom failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0 for unparseable weekday", len(got))
		}
	})
}

func TestReservationRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	pool := newTestPool(t)
	repo := NewReservationRepository(pool)

	base := persistence.Reservation{
		ID:       "res-1",
		RoomID:   "804",
		Date:     "2025-11-27",
		Start:    "13:00",
		End:      "14:00",
		UserName: "홍길동",
		Purpose:  "스터디",
	}

	if err := repo.CreateReservation(ctx, base); err != nil {
		t.Fatalf("CreateReservation failed: %v", err)
	}

	t.Run("overlapping insert is rejected", func(t *testing.T) {
		overlap := base
		overlap.ID = "res-2"
		overlap.Start = "13:30"
		overlap.End = "14:30"

		err := repo.CreateReservation(ctx, overlap)
		if !errors.Is(err, persistence.ErrOverlap) {
			t.Errorf("CreateReservation error = %v, want ErrOverlap", err)
		}
	})

	t.Run("touching boundary is accepted", func(t *testing.T) {
		adjacent := base
		adjacent.ID = "res-3"
		adjacent.Start = "14:00"
		adjacent.End = "15:00"

		if err := repo.CreateReservation(ctx, adjacent); err != nil {
			t.Fatalf("CreateReservation failed for adjacent interval: %v", err)
		}
	})

	t.Run("same interval in another room is accepted", func(t *testing.T) {
		other := base
		other.ID = "res-4"
		other.RoomID = "801"

		if err := repo.CreateReservation(ctx, other); err != nil {
			t.Fatalf("CreateReservation failed for other room: %v", err)
		}
	})

	t.Run("same interval on another date is accepted", func(t *testing.T) {
		other := base
		other.ID = "res-5"
		other.Date = "2025-11-28"

		if err := repo.CreateReservation(ctx, other); err != nil {
			t.Fatalf("CreateReservation failed for other date: %v", err)
		}
	})

	t.Run("inverted interval violates the schema check", func(t *testing.T) {
		inverted := base
		inverted.ID = "res-6"
		inverted.Date = "2025-12-01"
		inverted.Start = "15:00"
		inverted.End = "14:00"

		err := repo.CreateReservation(ctx, inverted)
		if !errors.Is(err, persistence.ErrConstraintViolation) {
			t.Errorf("CreateReservation error = %v, want ErrConstraintViolation", err)
		}
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		duplicate := base
		duplicate.Date = "2025-12-02"

		err := repo.CreateReservation(ctx, duplicate)
		if !errors.Is(err, persistence.ErrDuplicate) {
			t.Errorf("CreateReservation error = %v, want ErrDuplicate", err)
		}
	})

	t.Run("lists reservations ordered by start time", func(t *testing.T) {
		got, err := repo.ListReservations(ctx, "804", "2025-11-27")
		if err != nil {
			t.Fatalf("ListReservations failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Start != "13:00" || got[1].Start != "14:00" {
			t.Errorf("order = %s, %s; want 13:00 then 14:00", got[0].Start, got[1].Start)
		}
		if got[0].CreatedAt.IsZero() {
			t.Error("CreatedAt not round-tripped")
		}
	})

	t.Run("empty result for a quiet room", func(t *testing.T) {
		got, err := repo.ListReservations(ctx, "808", "2025-11-27")
		if err != nil {
			t.Fatalf("ListReservations failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("reports a malformed created_at instead of zeroing it", func(t *testing.T) {
		_, err := pool.DB().ExecContext(ctx, `
			INSERT INTO reservations (id, room_id, date, start_time, end_time, user_name, purpose, created_at)
			VALUES ('res-bad-ts', '807', '2025-11-27', '10:00', '11:00', '홍길동', '스터디', 'yesterday')
		`)
		if err != nil {
			t.Fatalf("failed to insert corrupt row: %v", err)
		}

		if _, err := repo.ListReservations(ctx, "807", "2025-11-27"); err == nil {
			t.Error("ListReservations ignored a malformed created_at")
		} else if !strings.Contains(err.Error(), "res-bad-ts") {
			t.Errorf("error does not name the offending reservation: %v", err)
		}
	})
}

func TestParseWeekday(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want time.Weekday
	}{
		{raw: "월", want: time.Monday},
		{raw: "금", want: time.Friday},
		{raw: "Mon", want: time.Monday},
		{raw: " fri ", want: time.Friday},
		{raw: "Wednesday", want: time.Wednesday},
	}
	for _, tc := range cases {
		got, err := parseWeekday(tc.raw)
		if err != nil {
			t.Fatalf("parseWeekday(%q) returned error: %v", tc.raw, err)
		}
		if got != tc.want {
			t.Errorf("parseWeekday(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}

	if _, err := parseWeekday("nope"); err == nil {
		t.Error("parseWeekday accepted an unknown spelling")
	}
}
