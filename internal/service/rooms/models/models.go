package models

import (
	"github.com/AdarshVardan/Hospital-Management-system-DBMS/internal/domain"
)

// Request модели

// ListRoomsRequest запрос на получение списка палат
type ListRoomsRequest struct {
	RoomType      *string `json:"roomType,omitempty"` // Фильтр по типу палаты (опционально)
	OnlyAvailable bool    `json:"onlyAvailable,omitempty"`
}

// BookRoomRequest запрос на бронирование палаты
type BookRoomRequest struct {
	PatientID int64 `json:"patientId"`
	RoomID    int64 `json:"roomId"`
}

// Response модели

// RoomResponse ответ с данными палаты
type RoomResponse struct {
	ID                 int64   `json:"id"`
	RoomType           string  `json:"roomType"`
	AvailabilityStatus string  `json:"availabilityStatus"`
	Cost               float64 `json:"cost"`
}

// RoomListResponse ответ со списком палат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
	Total int            `json:"total"`
}

// BookRoomResponse ответ на бронирование палаты
type BookRoomResponse struct {
	Room       RoomResponse `json:"room"`
	BillID     int64        `json:"billId"`
	BillAmount float64      `json:"billAmount"`
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(room *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:                 room.ID,
		RoomType:           room.RoomType,
		AvailabilityStatus: string(room.AvailabilityStatus),
		Cost:               room.Cost,
	}
}

// FromDomainRoomList конвертирует список domain моделей в response
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	result := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		result[i] = *FromDomainRoom(room)
	}
	return &RoomListResponse{Rooms: result, Total: len(result)}
}
