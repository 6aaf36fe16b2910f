package patients

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	patientRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/patient"
)

// PatientRepository интерфейс репозитория пациентов
type PatientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Patient, error)
	UpdateProfile(ctx context.Context, id int64, update patientRepo.ProfileUpdate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
