package domain

import "time"

// RoomType represents a category of rooms sharing capacity and pricing
type RoomType struct {
	ID          int64
	Code        string // short code used in room numbers, e.g. "STD", "DLX"
	Label       string // display name, e.g. "Standard", "Suite Deluxe"
	Description *string
	Capacity    int
	NightlyRate float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
