package get_statistics

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	Summary(ctx context.Context, req *models.StatisticsRequest) (*models.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
