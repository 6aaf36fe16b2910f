package pay_bill

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	billsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/bills"
)

const (
	msgInvalidBillID      = "некорректный ID счета"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBillNotFound       = "счет не найден"
	msgBillAlreadyPaid    = "счет уже оплачен"
	msgAccessDenied       = "счет принадлежит другому пациенту"
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

// Handle PATCH /api/v1/bills/{billId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	billID, err := strconv.ParseInt(vars["billId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bills/{id}/pay - Invalid bill ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBillID)
		return
	}

	var req PayBillRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bills/{id}/pay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Pay(r.Context(), billID, req.PatientID)
	if err != nil {
		switch {
		case errors.Is(err, billsService.ErrBillNotFound):
			h.logger.Warn("PATCH /bills/{id}/pay - Bill not found: bill_id=%d", billID)
			handlers.RespondNotFound(w, msgBillNotFound)

		case errors.Is(err, billsService.ErrBillAlreadyPaid):
			h.logger.Warn("PATCH /bills/{id}/pay - Bill already paid: bill_id=%d", billID)
			handlers.RespondError(w, http.StatusConflict, msgBillAlreadyPaid)

		case errors.Is(err, billsService.ErrAccessDenied):
			h.logger.Warn("PATCH /bills/{id}/pay - Access denied: bill_id=%d, patient_id=%d",
				billID, req.PatientID)
			handlers.RespondError(w, http.StatusForbidden, msgAccessDenied)

		case errors.Is(err, billsService.ErrInvalidInput):
			h.logger.Warn("PATCH /bills/{id}/pay - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /bills/{id}/pay - Failed: bill_id=%d, error=%v", billID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bills/{id}/pay - Bill paid: bill_id=%d, amount=%.2f", billID, result.Amount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
