package book_room

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/rooms/models"
)

type RoomsService interface {
	Book(ctx context.Context, req *models.BookRoomRequest) (*models.BookRoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
