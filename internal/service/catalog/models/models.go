package models

import (
	"errors"
	"strings"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
)

var (
	// ErrInvalidRoomStatus возвращается при некорректном статусе комнаты
	ErrInvalidRoomStatus = errors.New("invalid room status")
)

// Сентинельные значения фильтра, означающие "без фильтрации"
var filterSentinels = []string{"", "tous", "all"}

// Request модели

// SaveRoomTypeRequest запрос на создание или обновление типа комнаты
type SaveRoomTypeRequest struct {
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `json:"nightlyRate"`
}

// CreateRoomRequest запрос на создание комнаты
// Номер комнаты не передается, он генерируется автоматически
type CreateRoomRequest struct {
	RoomTypeID      int64   `json:"roomTypeId"`
	Floor           int     `json:"floor"`
	AirConditioning bool    `json:"airConditioning"`
	Balcony         bool    `json:"balcony"`
	OceanView       bool    `json:"oceanView"`
	LastRenovated   *string `json:"lastRenovated,omitempty"` // "2006-01-02"
}

// UpdateRoomRequest запрос на обновление комнаты
type UpdateRoomRequest struct {
	RoomTypeID      *int64  `json:"roomTypeId,omitempty"`
	Floor           *int    `json:"floor,omitempty"`
	Status          *string `json:"status,omitempty"`
	AirConditioning *bool   `json:"airConditioning,omitempty"`
	Balcony         *bool   `json:"balcony,omitempty"`
	OceanView       *bool   `json:"oceanView,omitempty"`
	LastRenovated   *string `json:"lastRenovated,omitempty"`
}

// ListRoomsRequest запрос на получение списка комнат
type ListRoomsRequest struct {
	TypeLabel string `json:"typeLabel,omitempty"`
	Status    string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр.
// Пустые и сентинельные значения ("Tous", "All") фильтрацию отключают
func (r *ListRoomsRequest) ToDomainFilter() (domain.RoomFilter, error) {
	var filter domain.RoomFilter

	if !isFilterSentinel(r.TypeLabel) {
		label := r.TypeLabel
		filter.TypeLabel = &label
	}
	if !isFilterSentinel(r.Status) {
		status, err := ToDomainRoomStatus(r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

func isFilterSentinel(value string) bool {
	for _, s := range filterSentinels {
		if strings.EqualFold(strings.TrimSpace(value), s) {
			return true
		}
	}
	return false
}

// Response модели

// RoomTypeResponse ответ с данными типа комнаты
type RoomTypeResponse struct {
	ID          int64   `json:"id"`
	Code        string  `json:"code"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `json:"nightlyRate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomTypeListResponse ответ со списком типов комнат
type RoomTypeListResponse struct {
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Floor  int    `json:"floor"`
	Status string `json:"status"`

	RoomTypeID  *int64  `json:"roomTypeId,omitempty"`
	TypeCode    string  `json:"typeCode,omitempty"`
	TypeLabel   string  `json:"typeLabel,omitempty"`
	Capacity    int     `json:"capacity"`
	NightlyRate float64 `json:"nightlyRate"`

	AirConditioning bool    `json:"airConditioning"`
	Balcony         bool    `json:"balcony"`
	OceanView       bool    `json:"oceanView"`
	LastRenovated   *string `json:"lastRenovated,omitempty"` // "2006-01-02"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком комнат
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// Методы конвертации

// FromDomainRoomType конвертирует domain модель в DTO
func FromDomainRoomType(t *domain.RoomType) *RoomTypeResponse {
	if t == nil {
		return nil
	}

	return &RoomTypeResponse{
		ID:          t.ID,
		Code:        t.Code,
		Label:       t.Label,
		Description: t.Description,
		Capacity:    t.Capacity,
		NightlyRate: t.NightlyRate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// FromDomainRoomTypeList конвертирует список domain моделей в DTO
func FromDomainRoomTypeList(types []*domain.RoomType) *RoomTypeListResponse {
	resp := &RoomTypeListResponse{
		RoomTypes: make([]RoomTypeResponse, 0, len(types)),
	}
	for _, t := range types {
		if typeResp := FromDomainRoomType(t); typeResp != nil {
			resp.RoomTypes = append(resp.RoomTypes, *typeResp)
		}
	}
	return resp
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *RoomResponse {
	if room == nil {
		return nil
	}

	resp := &RoomResponse{
		ID:              room.ID,
		Number:          room.Number,
		Floor:           room.Floor,
		Status:          string(room.Status),
		RoomTypeID:      room.RoomTypeID,
		TypeCode:        room.TypeCode,
		TypeLabel:       room.TypeLabel,
		Capacity:        room.Capacity,
		NightlyRate:     room.NightlyRate,
		AirConditioning: room.AirConditioning,
		Balcony:         room.Balcony,
		OceanView:       room.OceanView,
		CreatedAt:       room.CreatedAt,
		UpdatedAt:       room.UpdatedAt,
	}

	if room.LastRenovated != nil {
		renovated := room.LastRenovated.Format(domain.DateFormat)
		resp.LastRenovated = &renovated
	}

	return resp
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}
	for _, room := range rooms {
		if roomResp := FromDomainRoom(room); roomResp != nil {
			resp.Rooms = append(resp.Rooms, *roomResp)
		}
	}
	return resp
}

// ToDomainRoomStatus конвертирует строку в domain.RoomStatus с валидацией
func ToDomainRoomStatus(status string) (domain.RoomStatus, error) {
	s := domain.RoomStatus(status)

	validStatuses := []domain.RoomStatus{
		domain.RoomStatusFree,
		domain.RoomStatusOccupied,
		domain.RoomStatusMaintenance,
		domain.RoomStatusOutOfService,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidRoomStatus
}
