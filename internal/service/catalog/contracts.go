package catalog

import (
	"context"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
)

// RoomTypeRepository интерфейс репозитория типов комнат
type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *domain.RoomType) (*domain.RoomType, error)
	GetByID(ctx context.Context, id int64) (*domain.RoomType, error)
	GetByCode(ctx context.Context, code string) (*domain.RoomType, error)
	List(ctx context.Context) ([]*domain.RoomType, error)
	Update(ctx context.Context, roomType *domain.RoomType) error
	Delete(ctx context.Context, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error)
	ListNumbersByTypeAndFloor(ctx context.Context, roomTypeID int64, floor int) ([]string, error)
	CountByType(ctx context.Context, roomTypeID int64) (int, error)
	Update(ctx context.Context, room *domain.Room) error
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
// Каталогу нужны только проверки перед изменением комнат
type ReservationRepository interface {
	CountFutureActive(ctx context.Context, roomID int64, now time.Time) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
