package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/example/classroom-reservation/internal/timetable"
)

type scheduleService interface {
	GetRoomSchedule(ctx context.Context, roomID, date string) (timetable.View, error)
}

type ScheduleHandler struct {
	service   scheduleService
	responder responder
	logger    *slog.Logger
}

func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, responder: newResponder(logger), logger: defaultLogger(logger)}
}

// Get renders the composed schedule for one room and date.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	roomID, ok := RoomIDFromContext(r.Context())
	if !ok || strings.TrimSpace(roomID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidRoomID)
		return
	}

	date := r.URL.Query().Get("date")

	view, err := h.service.GetRoomSchedule(r.Context(), roomID, date)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err, "시간표/예약 정보를 불러오는 중 오류가 발생했습니다.")
		return
	}

	handlerLogger(r.Context(), h.logger, "schedule", "get", "room_id", roomID, "date", date).
		Info("schedule rendered", "lectures", len(view.Lectures), "reservations", len(view.Reservations))

	h.responder.writeSuccess(r.Context(), w, http.StatusOK, "", toScheduleResponse(view))
}

type scheduleResponse struct {
	Date         string                `json:"date"`
	RoomID       string                `json:"roomId"`
	Weekday      string                `json:"weekday"`
	Timetable    []lectureResponse     `json:"timetable"`
	Reservations []reservationResponse `json:"reservations"`
	Grid         []gridRowResponse     `json:"grid"`
}

type lectureResponse struct {
	Subject    string `json:"subject"`
	Instructor string `json:"instructor"`
	Day        string `json:"day"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type reservationResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	UserName  string `json:"user_name"`
	Purpose   string `json:"purpose,omitempty"`
}

type gridRowResponse struct {
	Slot  string         `json:"slot"`
	Cells []cellResponse `json:"cells"`
}

type cellResponse struct {
	Kind   string `json:"kind"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}

func toScheduleResponse(view timetable.View) scheduleResponse {
	lectures := make([]lectureResponse, 0, len(view.Lectures))
	for _, lecture := range view.Lectures {
		lectures = append(lectures, lectureResponse{
			Subject:    lecture.Subject,
			Instructor: lecture.Instructor,
			Day:        timetable.WeekdayName(lecture.Weekday),
			StartTime:  lecture.Start,
			EndTime:    lecture.End,
		})
	}

	reservations := make([]reservationResponse, 0, len(view.Reservations))
	for _, reservation := range view.Reservations {
		reservations = append(reservations, reservationResponse{
			ID:        reservation.ID,
			RoomID:    reservation.RoomID,
			Date:      reservation.Date,
			StartTime: reservation.Start,
			EndTime:   reservation.End,
			UserName:  reservation.UserName,
			Purpose:   reservation.Purpose,
		})
	}

	grid := make([]gridRowResponse, 0, len(view.Grid))
	for _, row := range view.Grid {
		cells := make([]cellResponse, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cellResponse{Kind: string(cell.Kind), Title: cell.Title, Detail: cell.Detail})
		}
		grid = append(grid, gridRowResponse{Slot: row.Slot, Cells: cells})
	}

	return scheduleResponse{
		Date:         view.Date,
		RoomID:       view.RoomID,
		Weekday:      view.Weekday,
		Timetable:    lectures,
		Reservations: reservations,
		Grid:         grid,
	}
}
