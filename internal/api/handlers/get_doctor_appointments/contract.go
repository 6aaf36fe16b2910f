package get_doctor_appointments

import (
	"context"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetDoctorAppointments(ctx context.Context, doctorID int64) (*models.DoctorScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
