package update_doctor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	doctorsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDoctorID    = "некорректный ID врача"
	msgDoctorNotFound     = "врач не найден"
)

type Handler struct {
	service DoctorsService
	logger  Logger
}

func NewHandler(service DoctorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /doctors/{id} - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	var req models.UpdateDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /doctors/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, doctorsService.ErrDoctorNotFound):
			h.logger.Warn("PUT /doctors/{id} - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, doctorsService.ErrInvalidInput):
			h.logger.Warn("PUT /doctors/{id} - Invalid input: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /doctors/{id} - Failed: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /doctors/{id} - Doctor updated: doctor_id=%d", doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
