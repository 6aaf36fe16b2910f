package change_password

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	authService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверный ID пользователя или пароль"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/change-password
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/change-password - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.ChangePassword(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/change-password - Invalid credentials: user_id=%d", req.UserID)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/change-password - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/change-password - Failed: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/change-password - Password changed: user_id=%d", req.UserID)
	w.WriteHeader(http.StatusNoContent)
}
