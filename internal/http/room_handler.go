package http

import (
	"log/slog"
	"net/http"

	"github.com/example/classroom-reservation/internal/application"
)

type RoomHandler struct {
	catalog   *application.RoomCatalog
	responder responder
}

func NewRoomHandler(catalog *application.RoomCatalog, logger *slog.Logger) *RoomHandler {
	return &RoomHandler{catalog: catalog, responder: newResponder(logger)}
}

type roomResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity int      `json:"capacity"`
	Features []string `json:"features"`
	Type     string   `json:"type"`
}

// List returns the static classroom catalog.
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.catalog == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rooms := h.catalog.Rooms()
	out := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomResponse{
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.Capacity,
			Features: room.Features,
			Type:     room.Type,
		})
	}

	h.responder.writeSuccess(r.Context(), w, http.StatusOK, "", map[string]any{"rooms": out})
}
