package domain

import "time"

// DoctorStatus represents the work status of a doctor
type DoctorStatus string

const (
	DoctorStatusActive  DoctorStatus = "active"
	DoctorStatusOnLeave DoctorStatus = "on_leave"
	DoctorStatusRetired DoctorStatus = "retired"
)

// Doctor represents a doctor in the hospital
type Doctor struct {
	ID                int64
	Name              string
	DateOfBirth       *time.Time
	Gender            string
	Specialization    string
	Phone             string
	Email             string
	Address           string
	AppointmentCost   float64
	YearsOfExperience int
	WorkStatus        DoctorStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable reports whether patients may book appointments with the doctor.
// Only active doctors take appointments.
func (d *Doctor) IsBookable() bool {
	return d.WorkStatus == DoctorStatusActive
}

// DoctorsFilter фильтр для выборки врачей
type DoctorsFilter struct {
	Specialization *string       // nil - все специализации
	WorkStatus     *DoctorStatus // nil - любой статус
}
