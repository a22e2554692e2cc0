package reports

import (
	"context"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
)

// StatsRepository интерфейс агрегатных запросов по бронированиям
type StatsRepository interface {
	SumRevenueBetween(ctx context.Context, start, end time.Time) (float64, error)
	SumNightsBetween(ctx context.Context, start, end time.Time) (int, error)
	AvgNightsBetween(ctx context.Context, start, end time.Time) (float64, error)
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
	CountCancelledBetween(ctx context.Context, start, end time.Time) (int, error)
	CountByMonthBetween(ctx context.Context, start, end time.Time) ([]*domain.MonthCount, error)
	SumNightsByMonthBetween(ctx context.Context, start, end time.Time) ([]*domain.MonthNights, error)
	CountByRoomBetween(ctx context.Context, start, end time.Time) ([]*domain.RoomCount, error)
	CountByTypeBetween(ctx context.Context, start, end time.Time) ([]*domain.TypeCount, error)
	CountByClientBetween(ctx context.Context, start, end time.Time) ([]*domain.ClientCount, error)
}

// RoomRepository интерфейс репозитория комнат
// Отчетам нужны список и количество комнат
type RoomRepository interface {
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	Count(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
