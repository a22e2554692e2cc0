package create_room_type

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateRoomType(ctx context.Context, req *models.SaveRoomTypeRequest) (*models.RoomTypeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
