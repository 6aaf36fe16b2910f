package domain

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// Appointment represents a booked consultation slot.
// For a given (DoctorID, Date) each StartTime value appears in at most one
// row - the appointments table enforces this with a unique constraint, and
// the booking transaction re-validates it before inserting.
type Appointment struct {
	ID        int64
	PatientID int64
	DoctorID  int64
	Date      time.Time
	StartTime types.TimeString
	Purpose   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentWithPatient is an appointment joined with the patient fields a
// doctor needs when reviewing the day's schedule.
type AppointmentWithPatient struct {
	Appointment

	PatientName   string
	PatientDOB    time.Time
	PatientGender string
}

// PatientAge returns the patient's age in full years at the given moment.
func (a *AppointmentWithPatient) PatientAge(now time.Time) int {
	age := now.Year() - a.PatientDOB.Year()
	if now.YearDay() < a.PatientDOB.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
