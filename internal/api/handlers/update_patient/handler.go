package update_patient

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	patientsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/patients"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/patients/models"
)

const (
	msgInvalidPatientID   = "некорректный ID пациента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPatientNotFound    = "пациент не найден"
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

// Handle PUT /api/v1/patients/{patientId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /patients/{id} - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	var req models.UpdatePatientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /patients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, patientsService.ErrPatientNotFound):
			h.logger.Warn("PUT /patients/{id} - Patient not found: patient_id=%d", patientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, patientsService.ErrInvalidInput):
			h.logger.Warn("PUT /patients/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /patients/{id} - Failed: patient_id=%d, error=%v", patientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /patients/{id} - Profile updated: patient_id=%d", patientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
