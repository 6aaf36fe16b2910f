package get_doctor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	doctorsService "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors"
)

const (
	msgInvalidDoctorID = "некорректный ID врача"
	msgDoctorNotFound  = "врач не найден"
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

// Handle GET /api/v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorID, err := strconv.ParseInt(vars["doctorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id} - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	result, err := h.service.GetByID(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, doctorsService.ErrDoctorNotFound) {
			h.logger.Warn("GET /doctors/{id} - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)
			return
		}
		h.logger.Error("GET /doctors/{id} - Failed: doctor_id=%d, error=%v", doctorID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /doctors/{id} - Doctor returned: doctor_id=%d", doctorID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
