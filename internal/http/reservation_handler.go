package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/classroom-reservation/internal/application"
	"github.com/example/classroom-reservation/internal/persistence"
)

type reservationService interface {
	CreateReservation(ctx context.Context, input application.CreateReservationInput) (persistence.Reservation, error)
}

type ReservationHandler struct {
	service   reservationService
	responder responder
	logger    *slog.Logger
}

func NewReservationHandler(service reservationService, logger *slog.Logger) *ReservationHandler {
	return &ReservationHandler{service: service, responder: newResponder(logger), logger: defaultLogger(logger)}
}

type reservationRequest struct {
	RoomID    string `json:"room_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UserName  string `json:"user_name"`
	Purpose   string `json:"purpose"`
}

// Create registers a new reservation.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	created, err := h.service.CreateReservation(r.Context(), application.CreateReservationInput{
		RoomID:   req.RoomID,
		Date:     req.Date,
		Start:    req.StartTime,
		End:      req.EndTime,
		UserName: req.UserName,
		Purpose:  req.Purpose,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err, "예약 저장 중 오류가 발생했습니다.")
		return
	}

	handlerLogger(r.Context(), h.logger, "reservation", "create", "room_id", created.RoomID, "date", created.Date).
		Info("reservation created", "reservation_id", created.ID)

	h.responder.writeSuccess(r.Context(), w, http.StatusCreated, "예약이 등록되었습니다.", map[string]any{
		"reservation": reservationResponse{
			ID:        created.ID,
			RoomID:    created.RoomID,
			Date:      created.Date,
			StartTime: created.Start,
			EndTime:   created.End,
			UserName:  created.UserName,
			Purpose:   created.Purpose,
		},
	})
}
