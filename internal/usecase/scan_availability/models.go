package scan_availability

import "time"

// Request модель запроса на обзор доступности врача
type Request struct {
	UserID   int64 // ID пользователя (для логирования, не влияет на результат)
	DoctorID int64 // ID врача
}

// Response модель ответа с обзором окна бронирования.
// Days содержит ровно по одной записи на каждый день окна, начиная с
// сегодняшнего дня, в хронологическом порядке - в том числе для полностью
// занятых дней.
type Response struct {
	DoctorID    int64
	WindowStart time.Time
	WindowEnd   time.Time
	Days        []DayEntry
}

// DayEntry один день окна бронирования
type DayEntry struct {
	Date       time.Time // Дата дня
	OpenSlots  int       // Количество свободных слотов
	HasOpening bool      // Остался ли хотя бы один свободный слот
}
