package book_reservation

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("book_reservation: room not found")

	// ErrRoomNotBookable возвращается, когда комната выведена из эксплуатации
	// или находится на обслуживании
	ErrRoomNotBookable = errors.New("book_reservation: room is not bookable")

	// ErrRoomAlreadyBooked возвращается, когда интервал пересекается
	// с существующей бронью комнаты
	ErrRoomAlreadyBooked = errors.New("book_reservation: room is already booked for this interval")

	// ErrArrivalInPast возвращается, когда время прибытия уже прошло
	ErrArrivalInPast = errors.New("book_reservation: arrival is in the past")

	// ErrDepartureBeforeArrival возвращается, когда отъезд не позже прибытия
	ErrDepartureBeforeArrival = errors.New("book_reservation: departure must be after arrival")

	// ErrPartySizeExceedsCapacity возвращается, когда гостей больше, чем вмещает комната
	ErrPartySizeExceedsCapacity = errors.New("book_reservation: party size exceeds room capacity")

	// ErrDepositOutOfRange возвращается, когда задаток вне допустимых границ
	ErrDepositOutOfRange = errors.New("book_reservation: deposit is out of the allowed range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_reservation: internal error")
)
