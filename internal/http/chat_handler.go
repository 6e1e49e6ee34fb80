package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/classroom-reservation/internal/chat"
)

type chatRelay interface {
	Ask(ctx context.Context, message string) (string, error)
}

type ChatHandler struct {
	relay     chatRelay
	responder responder
	logger    *slog.Logger
}

func NewChatHandler(relay chatRelay, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{relay: relay, responder: newResponder(logger), logger: defaultLogger(logger)}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

// Ask forwards a chat message to the configured assistant.
func (h *ChatHandler) Ask(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.relay == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errMissingChatInput)
		return
	}

	reply, err := h.relay.Ask(r.Context(), req.Message)
	if err != nil {
		logger := handlerLogger(r.Context(), h.logger, "chat", "ask")
		switch {
		case errors.Is(err, chat.ErrNotConfigured):
			logger.Error("chat relay is not configured")
			h.responder.writeJSON(r.Context(), w, http.StatusInternalServerError,
				envelope{Success: false, Message: "서버 설정에 Lambda URL이 없습니다."})
		case errors.Is(err, chat.ErrUnparseable):
			logger.Error("chat upstream sent unparseable body", "error", err)
			h.responder.writeJSON(r.Context(), w, http.StatusInternalServerError,
				envelope{Success: false, Message: "Lambda 응답을 이해할 수 없습니다."})
		case errors.Is(err, chat.ErrBadUpstream):
			logger.Error("chat upstream failed", "error", err)
			h.responder.writeJSON(r.Context(), w, http.StatusInternalServerError,
				envelope{Success: false, Message: "챗봇 엔진 호출 중 오류가 발생했습니다."})
		default:
			logger.Error("chat relay failed", "error", err)
			h.responder.writeJSON(r.Context(), w, http.StatusInternalServerError,
				envelope{Success: false, Message: "챗봇 응답 생성 중 서버 오류가 발생했습니다."})
		}
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, chatResponse{Success: true, Reply: reply})
}
