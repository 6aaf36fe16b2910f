package get_patient_treatments

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetPatientTreatments(ctx context.Context, patientID int64) (*models.TreatmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
