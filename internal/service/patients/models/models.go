package models

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	patientRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/patient"
)

// Request модели

// UpdatePatientRequest запрос на обновление профиля пациента
type UpdatePatientRequest struct {
	Name           *string  `json:"name,omitempty"`
	WeightKg       *float64 `json:"weightKg,omitempty"`
	HeightCm       *float64 `json:"heightCm,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Address        *string  `json:"address,omitempty"`
	MedicalHistory *string  `json:"medicalHistory,omitempty"`
}

// ToRepoUpdate конвертирует request в набор полей репозитория
func (r *UpdatePatientRequest) ToRepoUpdate() patientRepo.ProfileUpdate {
	return patientRepo.ProfileUpdate{
		Name:           r.Name,
		WeightKg:       r.WeightKg,
		HeightCm:       r.HeightCm,
		Phone:          r.Phone,
		Email:          r.Email,
		Address:        r.Address,
		MedicalHistory: r.MedicalHistory,
	}
}

// Response модели

// PatientResponse ответ с данными пациента
type PatientResponse struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	DateOfBirth    string   `json:"dateOfBirth"` // "1990-05-20"
	Age            int      `json:"age"`
	WeightKg       *float64 `json:"weightKg,omitempty"`
	HeightCm       *float64 `json:"heightCm,omitempty"`
	Gender         string   `json:"gender,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Email          string   `json:"email,omitempty"`
	Address        string   `json:"address,omitempty"`
	MedicalHistory string   `json:"medicalHistory,omitempty"`
}

// FromDomainPatient конвертирует domain модель в response
func FromDomainPatient(patient *domain.Patient) *PatientResponse {
	return &PatientResponse{
		ID:             patient.ID,
		Name:           patient.Name,
		DateOfBirth:    patient.DateOfBirth.Format(domain.DateFormat),
		Age:            patient.Age(time.Now()),
		WeightKg:       patient.WeightKg,
		HeightCm:       patient.HeightCm,
		Gender:         patient.Gender,
		Phone:          patient.Phone,
		Email:          patient.Email,
		Address:        patient.Address,
		MedicalHistory: patient.MedicalHistory,
	}
}
