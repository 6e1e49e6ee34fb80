package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/example/classroom-reservation/internal/application"
	"github.com/example/classroom-reservation/internal/booking"
)

var (
	errBadRequestBody   = errors.New("요청 형식이 올바르지 않습니다.")
	errInvalidRoomID    = errors.New("강의실 ID가 올바르지 않습니다.")
	errMissingChatInput = errors.New("message 필드가 필요합니다.")
)

// envelope is the wire shape every endpoint answers with.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeSuccess(ctx context.Context, w http.ResponseWriter, status int, message string, data any) {
	r.writeJSON(ctx, w, status, envelope{Success: true, Message: message, Data: data})
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := localizedStatusMessage(status)
	if err != nil {
		if msg := err.Error(); msg != "" {
			message = msg
		}
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}

	r.writeJSON(ctx, w, status, envelope{Success: false, Message: message})
}

// handleServiceError translates service errors into the response envelope.
// fallback is the localized message used for unexpected failures, matching
// the per-route wording users of the original service saw.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error, fallback string) {
	if fallback == "" {
		fallback = localizedStatusMessage(http.StatusInternalServerError)
	}
	if err == nil {
		r.writeJSON(ctx, w, http.StatusInternalServerError, envelope{Success: false, Message: fallback})
		return
	}

	switch {
	case errors.Is(err, application.ErrNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, envelope{Success: false, Message: "존재하지 않는 강의실입니다."})
	case errors.Is(err, application.ErrConflict):
		r.writeJSON(ctx, w, http.StatusConflict, envelope{Success: false, Message: "선택한 시간에 이미 예약이 있습니다."})
	default:
		var vErr *application.ValidationError
		if errors.As(err, &vErr) {
			// a missing field is a plain 400 while bad ordering is a semantic 422
			status := http.StatusBadRequest
			if vErr.Reason == booking.ReasonInvalidOrdering {
				status = http.StatusUnprocessableEntity
			}
			message := "입력 내용을 확인해주세요."
			for _, fieldMessage := range vErr.FieldErrors {
				// the validator reports the first failure only, so the
				// single field message doubles as the envelope message
				message = fieldMessage
			}
			r.writeJSON(ctx, w, status, envelope{Success: false, Message: message, Errors: vErr.FieldErrors})
			return
		}

		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "kind", application.ErrorKind(err), "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, envelope{Success: false, Message: fallback})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

func localizedStatusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "요청 내용이 올바르지 않습니다."
	case http.StatusNotFound:
		return "요청한 리소스를 찾을 수 없습니다."
	case http.StatusConflict:
		return "선택한 시간에 이미 예약이 있습니다."
	case http.StatusUnprocessableEntity:
		return "입력 내용을 확인해주세요."
	default:
		return "서버 내부 오류가 발생했습니다."
	}
}
