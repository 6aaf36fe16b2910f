package medicines

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// MedicineRepository интерфейс репозитория каталога лекарств
type MedicineRepository interface {
	List(ctx context.Context) ([]*domain.Medicine, error)
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Medicine, error)
}

// BillRepository интерфейс репозитория счетов
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
