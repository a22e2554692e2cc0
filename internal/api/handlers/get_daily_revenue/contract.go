package get_daily_revenue

import (
	"context"

	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports/models"
)

type ReportsService interface {
	RevenueToday(ctx context.Context) (*models.RevenueResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
