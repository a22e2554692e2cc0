package domain

// Aggregated rows returned by reporting queries

// MonthCount количество бронирований за месяц
type MonthCount struct {
	Month string // YYYY-MM
	Count int
}

// MonthNights количество проданных ночей за месяц
type MonthNights struct {
	Month  string // YYYY-MM
	Nights int
}

// RoomCount количество бронирований комнаты
type RoomCount struct {
	RoomID     int64
	RoomNumber string
	Count      int
}

// TypeCount количество бронирований типа комнат
type TypeCount struct {
	TypeLabel string
	Count     int
}

// ClientCount количество бронирований клиента
type ClientCount struct {
	FullName string
	Count    int
}
