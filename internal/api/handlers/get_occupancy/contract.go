package get_occupancy

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	CurrentOccupancy(ctx context.Context) (*models.OccupancyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
