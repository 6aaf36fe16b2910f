package update_doctor

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/doctors/models"
)

type DoctorsService interface {
	UpdateProfile(ctx context.Context, id int64, req *models.UpdateDoctorRequest) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
