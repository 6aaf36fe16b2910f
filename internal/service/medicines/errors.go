package medicines

import "errors"

var (
	// ErrMedicineNotFound возвращается, когда лекарство из корзины не найдено
	ErrMedicineNotFound = errors.New("medicine not found")

	// ErrEmptyCart возвращается при покупке без позиций
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
