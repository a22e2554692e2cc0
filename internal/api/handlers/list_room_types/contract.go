package list_room_types

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListRoomTypes(ctx context.Context) (*models.RoomTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
