package leaves

import "errors"

var (
	// ErrLeaveNotFound возвращается, когда заявка не найдена
	ErrLeaveNotFound = errors.New("leave request not found")

	// ErrLeaveAlreadyResolved возвращается, когда заявка уже рассмотрена
	ErrLeaveAlreadyResolved = errors.New("leave request already resolved")

	// ErrDoctorNotFound возвращается, когда врач не найден
	ErrDoctorNotFound = errors.New("doctor not found")

	// ErrInsufficientNotice возвращается, когда отпуск начинается раньше,
	// чем закрывается текущее окно бронирования
	ErrInsufficientNotice = errors.New("leave must be requested in advance")

	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("invalid leave date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
