package get_patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	patientsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/patients"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
	msgPatientNotFound  = "пациент не найден"
)

type Handler struct {
	service PatientsService
	logger  Logger
}

func NewHandler(service PatientsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id} - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	result, err := h.service.GetByID(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, patientsService.ErrPatientNotFound) {
			h.logger.Warn("GET /patients/{id} - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)
			return
		}
		h.logger.Error("GET /patients/{id} - Failed: patient_id=%d, error=%v", patientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients/{id} - Patient returned: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
