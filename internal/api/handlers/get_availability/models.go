package get_availability

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
	scanAvailability "github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/usecase/scan_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DoctorID    int64             `json:"doctorId"`
	WindowStart string            `json:"windowStart"`
	WindowEnd   string            `json:"windowEnd"`
	Days        []AvailabilityDay `json:"days"`
}

// AvailabilityDay один день окна бронирования
type AvailabilityDay struct {
	Date       string `json:"date"`
	OpenSlots  int    `json:"openSlots"`
	HasOpening bool   `json:"hasOpening"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scanAvailability.Response) *AvailabilityResponse {
	days := make([]AvailabilityDay, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = AvailabilityDay{
			Date:       day.Date.Format(domain.DateFormat),
			OpenSlots:  day.OpenSlots,
			HasOpening: day.HasOpening,
		}
	}

	return &AvailabilityResponse{
		DoctorID:    resp.DoctorID,
		WindowStart: resp.WindowStart.Format(domain.DateFormat),
		WindowEnd:   resp.WindowEnd.Format(domain.DateFormat),
		Days:        days,
	}
}
