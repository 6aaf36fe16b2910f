package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда палата не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomNotAvailable возвращается, когда палата уже занята
	ErrRoomNotAvailable = errors.New("room is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
