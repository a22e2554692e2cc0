package get_room

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error)
	GetRoomByNumber(ctx context.Context, number string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
