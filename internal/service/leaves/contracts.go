package leaves

import (
	"context"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// LeaveRepository интерфейс репозитория заявок на отпуск
type LeaveRepository interface {
	Create(ctx context.Context, leave *domain.Leave) (*domain.Leave, error)
	GetByID(ctx context.Context, id int64) (*domain.Leave, error)
	ListByStatus(ctx context.Context, status domain.LeaveStatus) ([]*domain.Leave, error)
	ListByDoctorID(ctx context.Context, doctorID int64) ([]*domain.Leave, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LeaveStatus) error
}

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	UpdateWorkStatus(ctx context.Context, id int64, status domain.DoctorStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
