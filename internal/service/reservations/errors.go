package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrNotArrivalDay возвращается при попытке заселения не в день прибытия
	ErrNotArrivalDay = errors.New("check-in is only allowed on the arrival day")

	// ErrNotDepartureDay возвращается при попытке выселения раньше дня отъезда
	ErrNotDepartureDay = errors.New("check-out is only allowed on the departure day")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("reservation cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
