package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/example/classroom-reservation/internal/application"
	"github.com/example/classroom-reservation/internal/chat"
	"github.com/example/classroom-reservation/internal/config"
	httptransport "github.com/example/classroom-reservation/internal/http"
	"github.com/example/classroom-reservation/internal/logging"
	"github.com/example/classroom-reservation/internal/persistence"
	"github.com/example/classroom-reservation/internal/persistence/sqlite"
	"github.com/example/classroom-reservation/internal/timetable"
)

func main() {
	logger := logging.NewLogger(slog.LevelInfo)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	pool, err := sqlite.NewConnectionPool(cfg.SQLiteDSN)
	if err != nil {
		logger.Error("failed to open storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if cerr := pool.Close(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	if err := sqlite.Migrate(context.Background(), pool); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	rooms, err := config.LoadRooms(cfg.RoomsPath)
	if err != nil {
		logger.Error("failed to load room catalog", "error", err)
		os.Exit(1)
	}
	catalog := application.NewRoomCatalog(toCatalogRooms(rooms))

	timetableRepo := sqlite.NewTimetableRepository(pool)
	reservationRepo := sqlite.NewReservationRepository(pool)

	if err := seedTimetable(ctx, cfg, timetableRepo, logger); err != nil {
		logger.Error("failed to seed timetable", "error", err)
		os.Exit(1)
	}

	scheduleService := application.NewScheduleService(timetableRepo, reservationRepo, catalog, logger)
	reservationService := application.NewReservationService(reservationRepo, catalog, uuid.NewString, time.Now, logger)
	relay := chat.NewRelay(cfg.ChatLambdaURL, cfg.ChatTimeout, logger)
	if !relay.Configured() {
		logger.Warn("chat relay endpoint is not configured; /api/chat will report an error")
	}

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Health:       httptransport.NewHealthHandler(pool, time.Now, logger),
		Rooms:        httptransport.NewRoomHandler(catalog, logger),
		Schedules:    httptransport.NewScheduleHandler(scheduleService, logger),
		Reservations: httptransport.NewReservationHandler(reservationService, logger),
		Chat:         httptransport.NewChatHandler(relay, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
		},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("reservation API listening", "addr", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

func toCatalogRooms(rooms []config.Room) []application.Room {
	out := make([]application.Room, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, application.Room{
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.Capacity,
			Features: room.Features,
			Type:     room.Type,
		})
	}
	return out
}

// seedTimetable populates the timetable table from the configured YAML file
// when the table is empty. The timetable is reference data; an already
// populated table is left untouched.
func seedTimetable(ctx context.Context, cfg config.Config, repo *sqlite.TimetableRepository, logger *slog.Logger) error {
	lectures, err := config.LoadTimetableSeed(cfg.TimetableSeedPath)
	if err != nil {
		return err
	}
	if len(lectures) == 0 {
		return nil
	}

	count, err := repo.CountLectures(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("timetable already populated, skipping seed", "lectures", count)
		return nil
	}

	rows := make([]persistence.LectureSlot, 0, len(lectures))
	for _, lecture := range lectures {
		rows = append(rows, toLectureRow(lecture))
	}
	if err := repo.SeedLectures(ctx, rows); err != nil {
		return err
	}
	logger.Info("timetable seeded", "lectures", len(rows))
	return nil
}

func toLectureRow(lecture timetable.LectureSlot) persistence.LectureSlot {
	return persistence.LectureSlot{
		RoomID:     lecture.RoomID,
		Weekday:    lecture.Weekday,
		Periods:    lecture.Periods,
		Subject:    lecture.Subject,
		Instructor: lecture.Instructor,
	}
}
