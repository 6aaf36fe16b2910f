package apply_leave

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	leavesService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDoctorNotFound     = "врач не найден"
	msgInvalidDateRange   = "некорректный диапазон дат отпуска"
	msgInsufficientNotice = "отпуск должен начинаться после закрытия текущего окна записи"
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

// Handle POST /api/v1/leaves
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ApplyLeaveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /leaves - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Apply(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, leavesService.ErrDoctorNotFound):
			h.logger.Warn("POST /leaves - Doctor not found: doctor_id=%d", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, leavesService.ErrInvalidDateRange):
			h.logger.Warn("POST /leaves - Invalid date range: doctor_id=%d, leave=%s, return=%s",
				req.DoctorID, req.LeaveDate, req.ReturnDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, leavesService.ErrInsufficientNotice):
			h.logger.Warn("POST /leaves - Insufficient notice: doctor_id=%d, leave=%s",
				req.DoctorID, req.LeaveDate)
			handlers.RespondError(w, http.StatusConflict, msgInsufficientNotice)

		case errors.Is(err, leavesService.ErrInvalidInput):
			h.logger.Warn("POST /leaves - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /leaves - Failed: doctor_id=%d, error=%v", req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /leaves - Leave requested: leave_id=%d, doctor_id=%d, days=%d",
		result.ID, req.DoctorID, result.DaysCount)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
