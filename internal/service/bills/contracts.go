package bills

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// BillRepository интерфейс репозитория счетов
type BillRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Bill, error)
	GetByPatientID(ctx context.Context, patientID int64, status *domain.PaymentStatus) ([]*domain.Bill, error)
	MarkPaid(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
