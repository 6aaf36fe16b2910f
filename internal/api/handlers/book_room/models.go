package book_room

// BookRoomRequest тело запроса на бронирование палаты
type BookRoomRequest struct {
	PatientID int64 `json:"patientId"`
}
