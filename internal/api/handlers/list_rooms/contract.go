package list_rooms

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	ListRooms(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
