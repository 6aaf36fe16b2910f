package book_appointment

import (
	"errors"
	"net/http"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/api/handlers"
	bookAppointment "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotTaken          = "выбранный слот уже занят"
	msgDoctorNotFound     = "врач не найден"
	msgDoctorNotBookable  = "врач не ведет прием"
	msgPatientNotFound    = "пациент не найден"
	msgDateInPast         = "дата приема уже прошла"
	msgDateTooFar         = "дата приема слишком далеко в будущем"
	msgInvalidSlot        = "время не является слотом расписания"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: patient_id=%d, doctor_id=%d, date=%s, time=%s",
				req.PatientID, req.DoctorID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, bookAppointment.ErrDoctorNotFound):
			h.logger.Warn("POST /appointments - Doctor not found: doctor_id=%d", req.DoctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, bookAppointment.ErrDoctorNotBookable):
			h.logger.Warn("POST /appointments - Doctor not bookable: doctor_id=%d", req.DoctorID)
			handlers.RespondError(w, http.StatusConflict, msgDoctorNotBookable)

		case errors.Is(err, bookAppointment.ErrPatientNotFound):
			h.logger.Warn("POST /appointments - Patient not found: patient_id=%d", req.PatientID)
			handlers.RespondNotFound(w, msgPatientNotFound)

		case errors.Is(err, bookAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in past: patient_id=%d, date=%s", req.PatientID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, bookAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far: patient_id=%d, date=%s", req.PatientID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, bookAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: patient_id=%d, time=%s", req.PatientID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed: patient_id=%d, doctor_id=%d, error=%v",
				req.PatientID, req.DoctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, patient_id=%d, doctor_id=%d",
		result.AppointmentID, req.PatientID, req.DoctorID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
