package find_available_rooms

import "time"

// Request модель запроса на поиск свободных комнат
type Request struct {
	Arrival   time.Time // Время прибытия
	Departure time.Time // Время отъезда
	PartySize int       // Количество гостей
}

// AvailableRoom свободная комната в ответе
type AvailableRoom struct {
	ID          int64   `json:"id"`
	Number      string  `json:"number"`
	Floor       int     `json:"floor"`
	TypeCode    string  `json:"typeCode,omitempty"`
	TypeLabel   string  `json:"typeLabel,omitempty"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `json:"nightlyRate"`

	AirConditioning bool `json:"airConditioning"`
	Balcony         bool `json:"balcony"`
	OceanView       bool `json:"oceanView"`
}

// Response модель ответа со списком свободных комнат
type Response struct {
	Rooms []AvailableRoom `json:"rooms"`
}
