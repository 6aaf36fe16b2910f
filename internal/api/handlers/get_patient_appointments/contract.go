package get_patient_appointments

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetPatientAppointments(ctx context.Context, patientID int64) (*models.PatientAppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
