package book_appointment

import (
	"context"
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	// GetOccupiedSlots получает занятые слоты врача на конкретную дату.
	// Внутри транзакции строки блокируются через FOR UPDATE.
	GetOccupiedSlots(ctx context.Context, doctorID int64, date time.Time) ([]types.TimeString, error)
}

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
}

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
}

// BillRepository интерфейс репозитория счетов
type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) (*domain.Bill, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	// DoSerializable выполняет функцию в транзакции с уровнем изоляции Serializable
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
