package create_reservation

import (
	"context"

	bookReservation "github.com/ouleymatou/HMS-ReservationService/internal/usecase/book_reservation"
)

type BookReservationUseCase interface {
	Execute(ctx context.Context, req *bookReservation.Request) (*bookReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
