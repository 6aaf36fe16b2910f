package models

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// Request модели

// StartTreatmentRequest запрос на начало лечения по записи
type StartTreatmentRequest struct {
	DoctorID      int64   `json:"doctorId"`
	AppointmentID int64   `json:"appointmentId"`
	Diagnosis     string  `json:"diagnosis"`
	TreatmentPlan string  `json:"treatmentPlan,omitempty"`
	Medicines     string  `json:"medicines,omitempty"`
	EndDate       *string `json:"endDate,omitempty"` // "2025-11-20"
}

// Response модели

// DoctorAppointmentResponse запись в расписании врача с данными пациента
type DoctorAppointmentResponse struct {
	ID            int64  `json:"id"`
	PatientID     int64  `json:"patientId"`
	PatientName   string `json:"patientName"`
	PatientAge    int    `json:"patientAge"`
	PatientGender string `json:"patientGender,omitempty"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "09:00"
	Purpose       string `json:"purpose"`
}

// DoctorScheduleResponse расписание врача
type DoctorScheduleResponse struct {
	Appointments []DoctorAppointmentResponse `json:"appointments"`
	Total        int                         `json:"total"`
}

// PatientAppointmentResponse запись пациента
type PatientAppointmentResponse struct {
	ID        int64     `json:"id"`
	DoctorID  int64     `json:"doctorId"`
	Date      string    `json:"date"`
	StartTime string    `json:"startTime"`
	Purpose   string    `json:"purpose"`
	CreatedAt time.Time `json:"createdAt"`
}

// PatientAppointmentListResponse список записей пациента
type PatientAppointmentListResponse struct {
	Appointments []PatientAppointmentResponse `json:"appointments"`
	Total        int                          `json:"total"`
}

// TreatmentResponse ответ с данными курса лечения
type TreatmentResponse struct {
	ID            int64   `json:"id"`
	PatientID     int64   `json:"patientId"`
	DoctorID      int64   `json:"doctorId"`
	Diagnosis     string  `json:"diagnosis"`
	TreatmentPlan string  `json:"treatmentPlan,omitempty"`
	Medicines     string  `json:"medicines,omitempty"`
	StartDate     string  `json:"startDate"`
	EndDate       *string `json:"endDate,omitempty"`
}

// TreatmentListResponse список курсов лечения
type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}

// FromDomainDoctorAppointments конвертирует расписание врача в response
func FromDomainDoctorAppointments(appointments []*domain.AppointmentWithPatient, now time.Time) *DoctorScheduleResponse {
	result := make([]DoctorAppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = DoctorAppointmentResponse{
			ID:            appt.ID,
			PatientID:     appt.PatientID,
			PatientName:   appt.PatientName,
			PatientAge:    appt.PatientAge(now),
			PatientGender: appt.PatientGender,
			Date:          appt.Date.Format(domain.DateFormat),
			StartTime:     appt.StartTime.String(),
			Purpose:       appt.Purpose,
		}
	}
	return &DoctorScheduleResponse{Appointments: result, Total: len(result)}
}

// FromDomainPatientAppointments конвертирует записи пациента в response
func FromDomainPatientAppointments(appointments []*domain.Appointment) *PatientAppointmentListResponse {
	result := make([]PatientAppointmentResponse, len(appointments))
	for i, appt := range appointments {
		result[i] = PatientAppointmentResponse{
			ID:        appt.ID,
			DoctorID:  appt.DoctorID,
			Date:      appt.Date.Format(domain.DateFormat),
			StartTime: appt.StartTime.String(),
			Purpose:   appt.Purpose,
			CreatedAt: appt.CreatedAt,
		}
	}
	return &PatientAppointmentListResponse{Appointments: result, Total: len(result)}
}

// FromDomainTreatment конвертирует курс лечения в response
func FromDomainTreatment(treatment *domain.Treatment) *TreatmentResponse {
	resp := &TreatmentResponse{
		ID:            treatment.ID,
		PatientID:     treatment.PatientID,
		DoctorID:      treatment.DoctorID,
		Diagnosis:     treatment.Diagnosis,
		TreatmentPlan: treatment.TreatmentPlan,
		Medicines:     treatment.Medicines,
		StartDate:     treatment.StartDate.Format(domain.DateFormat),
	}
	if treatment.EndDate != nil {
		endDate := treatment.EndDate.Format(domain.DateFormat)
		resp.EndDate = &endDate
	}
	return resp
}

// FromDomainTreatmentList конвертирует список курсов лечения в response
func FromDomainTreatmentList(treatments []*domain.Treatment) *TreatmentListResponse {
	result := make([]TreatmentResponse, len(treatments))
	for i, treatment := range treatments {
		result[i] = *FromDomainTreatment(treatment)
	}
	return &TreatmentListResponse{Treatments: result, Total: len(result)}
}
