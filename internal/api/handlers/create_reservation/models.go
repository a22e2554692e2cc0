package create_reservation

import (
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	bookReservation "github.com/ouleymatou/HMS-ReservationService/internal/usecase/book_reservation"
)

// CreateReservationRequest HTTP request model
// Даты принимаются в формате "2006-01-02" или RFC 3339:
// дата без времени получит стандартный час заезда или выезда
type CreateReservationRequest struct {
	RoomID          int64   `json:"roomId"`
	ClientFirstName string  `json:"clientFirstName"`
	ClientLastName  string  `json:"clientLastName"`
	ClientPhone     string  `json:"clientPhone"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	Arrival         string  `json:"arrival"`
	Departure       string  `json:"departure"`
	PartySize       int     `json:"partySize"`
	Deposit         float64 `json:"deposit"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	Number          string  `json:"number"`
	RoomID          int64   `json:"roomId"`
	ClientFirstName string  `json:"clientFirstName"`
	ClientLastName  string  `json:"clientLastName"`
	ClientPhone     string  `json:"clientPhone"`
	ClientEmail     *string `json:"clientEmail,omitempty"`
	Arrival         string  `json:"arrival"`
	Departure       string  `json:"departure"`
	PartySize       int     `json:"partySize"`
	RoomNumber      string  `json:"roomNumber"`
	NightlyRate     float64 `json:"nightlyRate"`
	Nights          int     `json:"nights"`
	TotalPrice      float64 `json:"totalPrice"`
	Deposit         float64 `json:"deposit"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*bookReservation.Request, error) {
	arrival, err := ParseDateTime(r.Arrival)
	if err != nil {
		return nil, err
	}
	departure, err := ParseDateTime(r.Departure)
	if err != nil {
		return nil, err
	}

	return &bookReservation.Request{
		RoomID:          r.RoomID,
		ClientFirstName: r.ClientFirstName,
		ClientLastName:  r.ClientLastName,
		ClientPhone:     r.ClientPhone,
		ClientEmail:     r.ClientEmail,
		Arrival:         arrival,
		Departure:       departure,
		PartySize:       r.PartySize,
		Deposit:         r.Deposit,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		Number:          resp.Number,
		RoomID:          resp.RoomID,
		ClientFirstName: resp.ClientFirstName,
		ClientLastName:  resp.ClientLastName,
		ClientPhone:     resp.ClientPhone,
		ClientEmail:     resp.ClientEmail,
		Arrival:         resp.Arrival.Format(time.RFC3339),
		Departure:       resp.Departure.Format(time.RFC3339),
		PartySize:       resp.PartySize,
		RoomNumber:      resp.RoomNumber,
		NightlyRate:     resp.NightlyRate,
		Nights:          resp.Nights,
		TotalPrice:      resp.TotalPrice,
		Deposit:         resp.Deposit,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

// ParseDateTime разбирает дату в формате RFC 3339 или "2006-01-02"
func ParseDateTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}
	return time.Parse(domain.DateFormat, value)
}
