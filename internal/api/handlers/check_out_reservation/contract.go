package check_out_reservation

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations/models"
)

type ReservationsService interface {
	CheckOut(ctx context.Context, id int64) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
