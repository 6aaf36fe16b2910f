package book_appointment

import (
	"fmt"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PatientID <= 0 {
		return fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
	}

	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(requestDate time.Time, now time.Time, schedule domain.Schedule) error {
	if domain.DateOnly(requestDate).Before(domain.DateOnly(now)) {
		return ErrInvalidDate
	}

	if domain.DateOnly(requestDate).After(schedule.WindowEnd(now)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, schedule.BookingWindowDays)
	}

	return nil
}

// validateSlot проверяет, что время является значением дневной сетки.
// Произвольное время между слотами (например, "09:30" при часовой сетке)
// отклоняется до обращения к БД.
func validateSlot(schedule domain.Schedule, req *Request) error {
	if !schedule.ContainsSlot(req.StartTime) {
		return fmt.Errorf("%w: %s is not on the daily grid", ErrInvalidSlot, req.StartTime)
	}
	return nil
}
