package roomtype

import "errors"

var (
	// ErrRoomTypeNotFound возвращается, когда тип комнаты не найден
	ErrRoomTypeNotFound = errors.New("roomtype.repository: room type not found")

	// ErrDuplicateCode возвращается при попытке создать тип с занятым кодом
	ErrDuplicateCode = errors.New("roomtype.repository: room type code already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("roomtype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("roomtype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("roomtype.repository: failed to scan row")
)
