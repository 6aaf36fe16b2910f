package bills

import "errors"

var (
	// ErrBillNotFound возвращается, когда счет не найден
	ErrBillNotFound = errors.New("bill not found")

	// ErrBillAlreadyPaid возвращается при попытке оплатить оплаченный счет
	ErrBillAlreadyPaid = errors.New("bill is already paid")

	// ErrAccessDenied возвращается, когда счет принадлежит другому пациенту
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
