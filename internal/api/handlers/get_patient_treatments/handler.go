package get_patient_treatments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	appointmentsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
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

// Handle GET /api/v1/patients/{patientId}/treatments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id}/treatments - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	result, err := h.service.GetPatientTreatments(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, appointmentsService.ErrInvalidInput) {
			h.logger.Warn("GET /patients/{id}/treatments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /patients/{id}/treatments - Failed: patient_id=%d, error=%v", patientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients/{id}/treatments - %d treatments returned: patient_id=%d",
		result.Total, patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
