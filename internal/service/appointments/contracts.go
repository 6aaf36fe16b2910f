package appointments

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на прием
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDoctorID(ctx context.Context, doctorID int64) ([]*domain.AppointmentWithPatient, error)
	GetByPatientID(ctx context.Context, patientID int64) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// TreatmentRepository интерфейс репозитория курсов лечения
type TreatmentRepository interface {
	Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error)
	GetByPatientID(ctx context.Context, patientID int64) ([]*domain.Treatment, error)
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
