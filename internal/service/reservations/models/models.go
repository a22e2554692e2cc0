package models

import (
	"errors"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе бронирования
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidScope возвращается при некорректной области выборки
	ErrInvalidScope = errors.New("invalid listing scope")
)

// Области выборки списка бронирований
const (
	ScopeAll             = "all"
	ScopeArrivalsToday   = "arrivals_today"
	ScopeDeparturesToday = "departures_today"
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ListReservationsRequest запрос на получение списка бронирований
type ListReservationsRequest struct {
	Scope     string  `json:"scope,omitempty"` // all | arrivals_today | departures_today
	Status    *string `json:"status,omitempty"`
	RoomID    *int64  `json:"roomId,omitempty"`
	StartDate *string `json:"startDate,omitempty"` // "2006-01-02"
	EndDate   *string `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		RoomID: r.RoomID,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.StartDate != nil {
		start, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &start
	}
	if r.EndDate != nil {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return filter, err
		}
		// Конец периода включает весь день
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &end
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	RoomID int64  `json:"roomId"`

	ClientFirstName string  `json:"clientFirstName"`
	ClientLastName  string  `json:"clientLastName"`
	ClientPhone     string  `json:"clientPhone"`
	ClientEmail     *string `json:"clientEmail,omitempty"`

	Arrival   time.Time `json:"arrival"`
	Departure time.Time `json:"departure"`
	PartySize int       `json:"partySize"`

	// Денормализованные данные
	RoomNumber  string  `json:"roomNumber"`
	NightlyRate float64 `json:"nightlyRate"`

	Nights     int     `json:"nights"`
	TotalPrice float64 `json:"totalPrice"`
	Deposit    float64 `json:"deposit"`

	Status string `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		Number:             r.Number,
		RoomID:             r.RoomID,
		ClientFirstName:    r.ClientFirstName,
		ClientLastName:     r.ClientLastName,
		ClientPhone:        r.ClientPhone,
		ClientEmail:        r.ClientEmail,
		Arrival:            r.Arrival,
		Departure:          r.Departure,
		PartySize:          r.PartySize,
		RoomNumber:         r.RoomNumber,
		NightlyRate:        r.NightlyRate,
		Nights:             r.Nights,
		TotalPrice:         r.TotalPrice,
		Deposit:            r.Deposit,
		Status:             string(r.Status),
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}
	for _, r := range reservations {
		if itemResp := FromDomainReservation(r); itemResp != nil {
			resp.Reservations = append(resp.Reservations, *itemResp)
		}
	}
	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusConfirmed,
		domain.StatusInProgress,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
