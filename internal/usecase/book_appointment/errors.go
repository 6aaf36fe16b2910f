package book_appointment

import "errors"

var (
	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrDoctorNotBookable возвращается, когда врач не принимает пациентов
	ErrDoctorNotBookable = errors.New("doctor is not taking appointments")

	// ErrPatientNotFound возвращается, когда пациент не найден
	ErrPatientNotFound = errors.New("patient not found")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("invalid appointment date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами окна бронирования
	ErrDateTooFarInFuture = errors.New("date is too far in the future")

	// ErrInvalidSlot возвращается, когда время не является слотом дневной сетки
	ErrInvalidSlot = errors.New("time is not a valid slot")

	// ErrSlotTaken возвращается, когда слот уже занят другой записью
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
