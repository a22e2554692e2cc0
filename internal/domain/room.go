package domain

import "time"

// RoomStatus represents the operational status of a room
type RoomStatus string

const (
	RoomStatusFree         RoomStatus = "free"
	RoomStatusOccupied     RoomStatus = "occupied"
	RoomStatusMaintenance  RoomStatus = "maintenance"
	RoomStatusOutOfService RoomStatus = "out_of_service"
)

// Room represents a physical hotel room
type Room struct {
	ID         int64
	Number     string // e.g. "CH-STD-01-003"
	RoomTypeID *int64 // nil when the type has been deleted
	Floor      int
	Status     RoomStatus

	AirConditioning bool
	Balcony         bool
	OceanView       bool
	LastRenovated   *time.Time

	// Derived from the room type; zero values when the type is absent
	TypeCode    string
	TypeLabel   string
	Capacity    int
	NightlyRate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if the room can accept new reservations.
// A room under maintenance stays bookable for future stays; only
// out-of-service rooms are excluded
func (r *Room) IsBookable() bool {
	return r.Status != RoomStatusOutOfService
}

// RoomFilter фильтр для получения списка комнат
type RoomFilter struct {
	TypeLabel *string     // Фильтр по названию типа (опционально)
	Status    *RoomStatus // Фильтр по статусу (опционально)
}
