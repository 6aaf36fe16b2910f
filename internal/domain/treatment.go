package domain

import "time"

// Treatment represents an ongoing or finished course of treatment.
// Starting a treatment consumes the appointment that led to it: the
// appointment row is deleted in the same transaction, which returns the
// (doctor, date, slot) triple to the open state.
type Treatment struct {
	ID            int64
	PatientID     int64
	DoctorID      int64
	Diagnosis     string
	TreatmentPlan string
	Medicines     string
	StartDate     time.Time
	EndDate       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
