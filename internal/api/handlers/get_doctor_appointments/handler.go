package get_doctor_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	appointmentsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/appointments - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.service.GetDoctorAppointments(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrInvalidInput) {
			h.logger.Warn("GET /doctors/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /doctors/{id}/appointments - Failed: doctor_id=%d, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id}/appointments - %d appointments returned: doctor_id=%d",
		result.Total, doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
