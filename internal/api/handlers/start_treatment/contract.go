package start_treatment

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

type AppointmentsService interface {
	StartTreatment(ctx context.Context, req *models.StartTreatmentRequest) (*models.TreatmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
