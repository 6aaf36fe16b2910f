package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре userID/пароль
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrWrongUserType возвращается, когда учетная запись другого типа
	ErrWrongUserType = errors.New("wrong user type")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
