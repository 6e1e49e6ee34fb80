package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

type databasePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db        databasePinger
	now       func() time.Time
	responder responder
}

func NewHealthHandler(db databasePinger, now func() time.Time, logger *slog.Logger) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{db: db, now: now, responder: newResponder(logger)}
}

// Status reports whether the service and its database are reachable.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	if h == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			h.responder.writeError(r.Context(), w, http.StatusServiceUnavailable,
				errors.New("데이터베이스에 연결할 수 없습니다."))
			return
		}
	}

	h.responder.writeSuccess(r.Context(), w, http.StatusOK, "강의실 예약 API 서버가 실행 중입니다.", map[string]any{
		"status": "ok",
		"time":   h.now().UTC().Format(time.RFC3339),
	})
}
