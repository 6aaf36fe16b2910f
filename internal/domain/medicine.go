package domain

import "time"

// Medicine represents a catalog entry in the hospital pharmacy
type Medicine struct {
	ID         int64
	Name       string
	Cost       float64
	MedicalUse string

	CreatedAt time.Time
	UpdatedAt time.Time
}
