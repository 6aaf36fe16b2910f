package models

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	doctorRepo "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/infra/storage/doctor"
)

// Request модели

// ListDoctorsRequest запрос на получение списка врачей
type ListDoctorsRequest struct {
	Specialization *string `json:"specialization,omitempty"` // Фильтр по специализации (опционально)
	WorkStatus     *string `json:"workStatus,omitempty"`     // Фильтр по статусу (опционально)
}

// UpdateDoctorRequest запрос на обновление профиля врача
type UpdateDoctorRequest struct {
	Name              *string  `json:"name,omitempty"`
	Gender            *string  `json:"gender,omitempty"`
	Specialization    *string  `json:"specialization,omitempty"`
	Phone             *string  `json:"phone,omitempty"`
	Email             *string  `json:"email,omitempty"`
	Address           *string  `json:"address,omitempty"`
	AppointmentCost   *float64 `json:"appointmentCost,omitempty"`
	YearsOfExperience *int     `json:"yearsOfExperience,omitempty"`
}

// ToRepoUpdate конвертирует request в набор полей репозитория
func (r *UpdateDoctorRequest) ToRepoUpdate() doctorRepo.ProfileUpdate {
	return doctorRepo.ProfileUpdate{
		Name:              r.Name,
		Gender:            r.Gender,
		Specialization:    r.Specialization,
		Phone:             r.Phone,
		Email:             r.Email,
		Address:           r.Address,
		AppointmentCost:   r.AppointmentCost,
		YearsOfExperience: r.YearsOfExperience,
	}
}

// Response модели

// DoctorResponse ответ с данными врача
type DoctorResponse struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Gender            string  `json:"gender,omitempty"`
	Specialization    string  `json:"specialization"`
	Phone             string  `json:"phone,omitempty"`
	Email             string  `json:"email,omitempty"`
	Address           string  `json:"address,omitempty"`
	AppointmentCost   float64 `json:"appointmentCost"`
	YearsOfExperience int     `json:"yearsOfExperience"`
	WorkStatus        string  `json:"workStatus"`
}

// DoctorListResponse ответ со списком врачей
type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

// FromDomainDoctor конвертирует domain модель в response
func FromDomainDoctor(doctor *domain.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:                doctor.ID,
		Name:              doctor.Name,
		Gender:            doctor.Gender,
		Specialization:    doctor.Specialization,
		Phone:             doctor.Phone,
		Email:             doctor.Email,
		Address:           doctor.Address,
		AppointmentCost:   doctor.AppointmentCost,
		YearsOfExperience: doctor.YearsOfExperience,
		WorkStatus:        string(doctor.WorkStatus),
	}
}

// FromDomainDoctorList конвертирует список domain моделей в response
func FromDomainDoctorList(doctors []*domain.Doctor) *DoctorListResponse {
	result := make([]DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		result[i] = *FromDomainDoctor(doctor)
	}
	return &DoctorListResponse{Doctors: result, Total: len(result)}
}
