package domain

import (
	"strings"
	"time"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
)

// Reservation represents a room reservation in the system
type Reservation struct {
	ID     int64
	Number string // e.g. "RSV-20250601-001"
	RoomID int64

	ClientFirstName string
	ClientLastName  string
	ClientPhone     string
	ClientEmail     *string

	Arrival   time.Time
	Departure time.Time
	PartySize int

	// Denormalized data for history
	RoomNumber  string
	NightlyRate float64

	Nights     int
	TotalPrice float64
	Deposit    float64

	Status ReservationStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation has not been cancelled
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// BlocksInterval returns true if the reservation holds its room
// for the booked interval
func (r *Reservation) BlocksInterval() bool {
	return r.Status == StatusConfirmed || r.Status == StatusInProgress
}

// CanBeCancelled returns true if the reservation can be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusConfirmed || r.Status == StatusInProgress
}

// CanCheckIn returns true if the client can be checked in
func (r *Reservation) CanCheckIn() bool {
	return r.Status == StatusConfirmed
}

// CanCheckOut returns true if the client can be checked out
func (r *Reservation) CanCheckOut() bool {
	return r.Status == StatusInProgress
}

// Overlaps reports whether the half-open interval [arrival, departure)
// intersects the reservation's own interval. Back-to-back stays where one
// departure equals the next arrival do not overlap
func (r *Reservation) Overlaps(arrival, departure time.Time) bool {
	return arrival.Before(r.Departure) && departure.After(r.Arrival)
}

// ClientFullName returns the client's display name
func (r *Reservation) ClientFullName() string {
	return strings.TrimSpace(r.ClientFirstName + " " + r.ClientLastName)
}

// ReservationFilter фильтр для получения списка бронирований
type ReservationFilter struct {
	RoomID    *int64             // Фильтр по комнате (опционально)
	Status    *ReservationStatus // Фильтр по статусу (опционально)
	StartDate *time.Time         // Прибытие не раньше даты (опционально)
	EndDate   *time.Time         // Прибытие не позже даты (опционально)
}
