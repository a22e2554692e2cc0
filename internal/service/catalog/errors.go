package catalog

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип комнаты не найден
	ErrRoomTypeNotFound = errors.New("room type not found")

	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrRoomTypeInUse возвращается при попытке удалить тип, к которому привязаны комнаты
	ErrRoomTypeInUse = errors.New("room type is still assigned to rooms")

	// ErrDuplicateCode возвращается, когда код типа комнаты уже занят
	ErrDuplicateCode = errors.New("room type code already exists")

	// ErrDuplicateNumber возвращается, когда номер комнаты уже занят
	ErrDuplicateNumber = errors.New("room number already exists")

	// ErrRoomHasUpcomingReservations возвращается при попытке изменить или удалить
	// комнату с будущими активными бронированиями
	ErrRoomHasUpcomingReservations = errors.New("room has upcoming reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
