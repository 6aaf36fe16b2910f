package list_doctors

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	doctorsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors/models"
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

// Handle GET /api/v1/doctors
// Query params: specialization (optional), workStatus (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListDoctorsRequest{}

	if specialization := r.URL.Query().Get("specialization"); specialization != "" {
		req.Specialization = &specialization
	}
	if workStatus := r.URL.Query().Get("workStatus"); workStatus != "" {
		req.WorkStatus = &workStatus
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, doctorsService.ErrInvalidInput) {
			h.logger.Warn("GET /doctors - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /doctors - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors - %d doctors returned", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
