package book_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	roomsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "некорректный ID палаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgRoomNotFound       = "палата не найдена"
	msgRoomNotAvailable   = "палата уже занята"
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

// Handle POST /api/v1/rooms/{roomId}/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /rooms/{id}/book - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	var body BookRoomRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /rooms/{id}/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Book(r.Context(), &models.BookRoomRequest{
		PatientID: body.PatientID,
		RoomID:    roomID,
	})
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("POST /rooms/{id}/book - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roomsService.ErrRoomNotAvailable):
			h.logger.Warn("POST /rooms/{id}/book - Room not available: room_id=%d", roomID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("POST /rooms/{id}/book - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rooms/{id}/book - Failed: room_id=%d, patient_id=%d, error=%v",
				roomID, body.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms/{id}/book - Room booked: room_id=%d, patient_id=%d, bill_id=%d",
		roomID, body.PatientID, result.BillID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
