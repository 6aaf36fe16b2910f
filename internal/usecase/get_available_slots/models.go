package get_available_slots

import (
	"time"

	"github.com/AdarshVardan/Hospital-Management-system-DBMS/pkg/types"
)

// Request модель запроса на получение свободных слотов врача
type Request struct {
	UserID   int64     // ID пользователя (для логирования, не влияет на результат)
	DoctorID int64     // ID врача
	Date     time.Time // Дата приема (без времени)
}

// Response модель ответа со списком свободных слотов
type Response struct {
	Date     time.Time // Дата, на которую запрашивались слоты
	DoctorID int64     // ID врача
	Slots    []Slot    // Свободные слоты в хронологическом порядке
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "09:00")
	DurationMinutes int              // Длительность слота в минутах
}
