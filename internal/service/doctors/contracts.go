package doctors

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, error)
	UpdateProfile(ctx context.Context, id int64, update doctorRepo.ProfileUpdate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
