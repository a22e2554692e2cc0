package models

import "github.com/ouleymatou/HMS-ReservationService/internal/domain"

// Request модели

// StatisticsRequest запрос сводной статистики за период.
// Даты в формате "2006-01-02", конец периода включительно
type StatisticsRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Response модели

// RoomStat статистика бронирований одной комнаты
type RoomStat struct {
	RoomNumber string `json:"roomNumber"`
	Count      int    `json:"count"`
}

// TypeStat статистика бронирований одного типа комнат
type TypeStat struct {
	TypeLabel string `json:"typeLabel"`
	Count     int    `json:"count"`
}

// ClientStat статистика бронирований одного клиента
type ClientStat struct {
	FullName string `json:"fullName"`
	Count    int    `json:"count"`
}

// MonthStat статистика за один месяц
type MonthStat struct {
	Month  string `json:"month"` // YYYY-MM
	Count  int    `json:"count"`
	Nights int    `json:"nights"`
}

// StatisticsResponse сводная статистика за период
type StatisticsResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	Revenue          float64 `json:"revenue"`
	NightsSold       int     `json:"nightsSold"`
	ReservationCount int     `json:"reservationCount"`
	Cancellations    int     `json:"cancellations"`
	AverageStay      float64 `json:"averageStay"`
	OccupancyRate    float64 `json:"occupancyRate"` // в процентах

	MostReservedRoom  *RoomStat   `json:"mostReservedRoom,omitempty"`
	LeastReservedRoom *RoomStat   `json:"leastReservedRoom,omitempty"`
	MostRequestedType *TypeStat   `json:"mostRequestedType,omitempty"`
	TopClient         *ClientStat `json:"topClient,omitempty"`

	ByMonth []MonthStat `json:"byMonth"`
}

// OccupancyResponse текущая загрузка отеля
type OccupancyResponse struct {
	TotalRooms    int     `json:"totalRooms"`
	OccupiedRooms int     `json:"occupiedRooms"`
	OccupancyRate float64 `json:"occupancyRate"` // в процентах
}

// RevenueResponse выручка за период
type RevenueResponse struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Revenue   float64 `json:"revenue"`
}

// Методы конвертации

// FromDomainRoomCount конвертирует агрегат по комнате в DTO
func FromDomainRoomCount(c *domain.RoomCount) *RoomStat {
	if c == nil {
		return nil
	}
	return &RoomStat{RoomNumber: c.RoomNumber, Count: c.Count}
}

// FromDomainTypeCount конвертирует агрегат по типу в DTO
func FromDomainTypeCount(c *domain.TypeCount) *TypeStat {
	if c == nil {
		return nil
	}
	return &TypeStat{TypeLabel: c.TypeLabel, Count: c.Count}
}

// FromDomainClientCount конвертирует агрегат по клиенту в DTO
func FromDomainClientCount(c *domain.ClientCount) *ClientStat {
	if c == nil {
		return nil
	}
	return &ClientStat{FullName: c.FullName, Count: c.Count}
}
