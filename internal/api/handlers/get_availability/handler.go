package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	scanAvailability "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/scan_availability"
)

const (
	msgInvalidDoctorID   = "некорректный ID врача"
	msgDoctorNotFound    = "врач не найден"
	msgDoctorNotBookable = "врач не ведет прием"
)

type Handler struct {
	useCase ScanAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ScanAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/doctors/{doctorId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &scanAvailability.Request{DoctorID: doctorID})
	if err != nil {
		switch {
		case errors.Is(err, scanAvailability.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/availability - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, scanAvailability.ErrDoctorNotBookable):
			h.logger.Warn("GET /doctors/{id}/availability - Doctor not bookable: doctor_id=%d", doctorID)
			handlers.RespondError(w, http.StatusConflict, msgDoctorNotBookable)

		case errors.Is(err, scanAvailability.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /doctors/{id}/availability - Failed: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/availability - %d days returned: doctor_id=%d", len(result.Days), doctorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
