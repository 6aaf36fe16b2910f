package login

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
	msgWrongUserType      = "учетная запись другого типа"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/login - Invalid credentials: user_id=%d", req.UserID)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)

		case errors.Is(err, authService.ErrWrongUserType):
			h.logger.Warn("POST /auth/login - Wrong user type: user_id=%d, requested=%s",
				req.UserID, req.UserType)
			handlers.RespondError(w, http.StatusForbidden, msgWrongUserType)

		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /auth/login - Failed: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Login successful: user_id=%d, user_type=%s",
		result.UserID, result.UserType)
	handlers.RespondJSON(w, http.StatusOK, result)
}
