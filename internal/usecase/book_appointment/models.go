package book_appointment

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// Request модель запроса на запись к врачу
type Request struct {
	PatientID int64            // ID пациента
	DoctorID  int64            // ID врача
	Date      time.Time        // Дата приема (без времени)
	StartTime types.TimeString // Время начала слота
	Purpose   string           // Цель визита (опционально)
}

// Response модель ответа с созданной записью и выставленным счетом
type Response struct {
	AppointmentID int64
	PatientID     int64
	DoctorID      int64
	DoctorName    string
	Date          time.Time
	StartTime     types.TimeString
	Purpose       string

	// Счет за прием выставляется той же транзакцией, что и запись
	BillID     int64
	BillAmount float64

	CreatedAt time.Time
}
