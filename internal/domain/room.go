package domain

import "time"

// RoomStatus represents the availability of a room
type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "available"
	RoomStatusOccupied  RoomStatus = "occupied"
)

// Room represents a hospital room
type Room struct {
	ID                 int64
	RoomType           string
	AvailabilityStatus RoomStatus
	Cost               float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable reports whether the room can be booked.
func (r *Room) IsAvailable() bool {
	return r.AvailabilityStatus == RoomStatusAvailable
}
