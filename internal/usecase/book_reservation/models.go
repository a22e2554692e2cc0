package book_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	RoomID int64 // ID комнаты

	ClientFirstName string  // Имя клиента
	ClientLastName  string  // Фамилия клиента
	ClientPhone     string  // Телефон клиента (сенегальский мобильный)
	ClientEmail     *string // Email клиента (опционально)

	Arrival   time.Time // Время прибытия
	Departure time.Time // Время отъезда
	PartySize int       // Количество гостей
	Deposit   float64   // Задаток
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID     int64  // ID созданного бронирования
	Number string // Номер брони, например "RSV-20250601-001"
	RoomID int64  // ID комнаты

	ClientFirstName string
	ClientLastName  string
	ClientPhone     string
	ClientEmail     *string

	Arrival   time.Time // Время прибытия после нормализации
	Departure time.Time // Время отъезда после нормализации
	PartySize int

	// Денормализованные данные
	RoomNumber  string  // Номер комнаты на момент брони
	NightlyRate float64 // Тариф за ночь на момент брони

	Nights     int     // Количество ночей
	TotalPrice float64 // Полная стоимость проживания
	Deposit    float64 // Задаток
	Status     string  // Статус бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
