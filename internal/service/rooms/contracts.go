package rooms

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	roomRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/room"
)

// RoomRepository интерфейс репозитория палат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	List(ctx context.Context, filter roomRepo.Filter) ([]*domain.Room, error)
	SetStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// BillRepository интерфейс репозитория счетов
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
