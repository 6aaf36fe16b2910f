package domain

import "time"

// Patient represents a registered patient
type Patient struct {
	ID             int64
	Name           string
	DateOfBirth    time.Time
	WeightKg       *float64
	HeightCm       *float64
	Gender         string
	Phone          string
	Email          string
	Address        string
	MedicalHistory string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age returns the patient's age in full years at the given moment.
func (p *Patient) Age(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
