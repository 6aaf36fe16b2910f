package resolve_leave

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	leavesService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/leaves/models"
)

const (
	msgInvalidLeaveID       = "некорректный ID заявки"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgLeaveNotFound        = "заявка на отпуск не найдена"
	msgLeaveAlreadyResolved = "заявка уже рассмотрена"
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

// Handle PATCH /api/v1/leaves/{leaveId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	leaveID, err := strconv.ParseInt(vars["leaveId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /leaves/{id} - Invalid leave ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLeaveID)
		return
	}

	var body ResolveLeaveRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PATCH /leaves/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Resolve(r.Context(), &models.ResolveLeaveRequest{
		LeaveID: leaveID,
		Approve: body.Approve,
	})
	if err != nil {
		switch {
		case errors.Is(err, leavesService.ErrLeaveNotFound):
			h.logger.Warn("PATCH /leaves/{id} - Leave not found: leave_id=%d", leaveID)
			handlers.RespondNotFound(w, msgLeaveNotFound)

		case errors.Is(err, leavesService.ErrLeaveAlreadyResolved):
			h.logger.Warn("PATCH /leaves/{id} - Leave already resolved: leave_id=%d", leaveID)
			handlers.RespondError(w, http.StatusConflict, msgLeaveAlreadyResolved)

		case errors.Is(err, leavesService.ErrInvalidInput):
			h.logger.Warn("PATCH /leaves/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /leaves/{id} - Failed: leave_id=%d, error=%v", leaveID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /leaves/{id} - Leave resolved: leave_id=%d, status=%s", leaveID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
