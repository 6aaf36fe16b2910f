package signup

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	authService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/auth/signup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		if errors.Is(err, authService.ErrInvalidInput) {
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /auth/signup - Failed: user_type=%s, error=%v", req.UserType, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/signup - Account created: user_id=%d, user_type=%s",
		result.UserID, result.UserType)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
