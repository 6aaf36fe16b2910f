package get_patient_bills

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	billsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills/models"
)

const (
	msgInvalidPatientID = "некорректный ID пациента"
)

type Handler struct {
	service BillsService
	logger  Logger
}

func NewHandler(service BillsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/patients/{patientId}/bills?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	patientID, err := strconv.ParseInt(vars["patientId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /patients/{id}/bills - Invalid patient ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPatientID)
		return
	}

	req := &models.GetPatientBillsRequest{PatientID: patientID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetPatientBills(r.Context(), req)
	if err != nil {
		if errors.Is(err, billsService.ErrInvalidInput) {
			h.logger.Warn("GET /patients/{id}/bills - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /patients/{id}/bills - Failed: patient_id=%d, error=%v", patientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /patients/{id}/bills - %d bills returned: patient_id=%d, pending_due=%.2f",
		result.Total, patientID, result.PendingDue)
	handlers.RespondJSON(w, http.StatusOK, result)
}
