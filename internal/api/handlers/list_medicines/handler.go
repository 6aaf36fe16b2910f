package list_medicines

import (
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
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

// Handle GET /api/v1/medicines
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /medicines - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /medicines - %d medicines returned", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
