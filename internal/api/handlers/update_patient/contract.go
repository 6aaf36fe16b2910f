package update_patient

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/patients/models"
)

type PatientsService interface {
	UpdateProfile(ctx context.Context, id int64, req *models.UpdatePatientRequest) (*models.PatientResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
