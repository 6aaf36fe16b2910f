package list_rooms

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	roomsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms/models"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?roomType=icu&onlyAvailable=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListRoomsRequest{}

	if roomType := r.URL.Query().Get("roomType"); roomType != "" {
		req.RoomType = &roomType
	}
	if r.URL.Query().Get("onlyAvailable") == "true" {
		req.OnlyAvailable = true
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, roomsService.ErrInvalidInput) {
			h.logger.Warn("GET /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /rooms - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /rooms - %d rooms returned", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
