package list_leaves

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	leavesService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
)

type Handler struct {
	service LeavesService
	logger  Logger
}

func NewHandler(service LeavesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/leaves?doctorId=3
// Без doctorId возвращает нерассмотренные заявки для администратора.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.LeaveListResponse
		err    error
	)

	if rawDoctorID := r.URL.Query().Get("doctorId"); rawDoctorID != "" {
		doctorID, parseErr := strconv.ParseInt(rawDoctorID, 10, 64)
		if parseErr != nil {
			h.logger.Warn("GET /leaves - Invalid doctor ID: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidDoctorID)
			return
		}
		result, err = h.service.ListByDoctor(r.Context(), doctorID)
	} else {
		result, err = h.service.ListPending(r.Context())
	}

	if err != nil {
		if errors.Is(err, leavesService.ErrInvalidInput) {
			h.logger.Warn("GET /leaves - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /leaves - Failed: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /leaves - %d leave requests returned", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
