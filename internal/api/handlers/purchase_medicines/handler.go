package purchase_medicines

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	medicinesService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/medicines/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMedicineNotFound   = "лекарство из корзины не найдено"
	msgEmptyCart          = "корзина пуста"
)

type Handler struct {
	service MedicinesService
	logger  Logger
}

func NewHandler(service MedicinesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/medicines/purchase
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.PurchaseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /medicines/purchase - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Purchase(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, medicinesService.ErrMedicineNotFound):
			h.logger.Warn("POST /medicines/purchase - Medicine not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgMedicineNotFound)

		case errors.Is(err, medicinesService.ErrEmptyCart):
			h.logger.Warn("POST /medicines/purchase - Empty cart: patient_id=%d", req.PatientID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, medicinesService.ErrInvalidInput):
			h.logger.Warn("POST /medicines/purchase - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /medicines/purchase - Failed: patient_id=%d, error=%v", req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /medicines/purchase - Purchase completed: patient_id=%d, bill_id=%d, amount=%.2f",
		req.PatientID, result.BillID, result.BillAmount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
