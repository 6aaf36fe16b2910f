package book_appointment

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	bookAppointment "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/book_appointment"
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// BookAppointmentRequest HTTP request model
type BookAppointmentRequest struct {
	PatientID int64  `json:"patientId"`
	DoctorID  int64  `json:"doctorId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "09:00"
	Purpose   string `json:"purpose,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	PatientID  int64   `json:"patientId"`
	DoctorID   int64   `json:"doctorId"`
	DoctorName string  `json:"doctorName"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	Purpose    string  `json:"purpose"`
	BillID     int64   `json:"billId"`
	BillAmount float64 `json:"billAmount"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookAppointmentRequest) ToUseCaseRequest() (*bookAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &bookAppointment.Request{
		PatientID: r.PatientID,
		DoctorID:  r.DoctorID,
		Date:      date,
		StartTime: startTime,
		Purpose:   r.Purpose,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.AppointmentID,
		PatientID:  resp.PatientID,
		DoctorID:   resp.DoctorID,
		DoctorName: resp.DoctorName,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		Purpose:    resp.Purpose,
		BillID:     resp.BillID,
		BillAmount: resp.BillAmount,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
