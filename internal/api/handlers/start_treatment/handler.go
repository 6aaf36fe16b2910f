package start_treatment

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	appointmentsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgAppointmentNotFound = "запись на прием не найдена"
	msgAccessDenied        = "запись принадлежит другому врачу"
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

// Handle POST /api/v1/treatments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.StartTreatmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /treatments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.StartTreatment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("POST /treatments - Appointment not found: appointment_id=%d", req.AppointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("POST /treatments - Access denied: doctor_id=%d, appointment_id=%d",
				req.DoctorID, req.AppointmentID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("POST /treatments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /treatments - Failed: doctor_id=%d, appointment_id=%d, error=%v",
				req.DoctorID, req.AppointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /treatments - Treatment started: treatment_id=%d, appointment_id=%d",
		result.ID, req.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
