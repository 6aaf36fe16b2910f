package get_available_slots

import (
	"fmt"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(requestDate time.Time, now time.Time, schedule domain.Schedule) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	if domain.DateOnly(requestDate).After(schedule.WindowEnd(now)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, schedule.BookingWindowDays)
	}

	return nil
}
