package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	DayFormat  = "20060102"   // YYYYMMDD, used in reservation numbers
)

// Business validation constants
const (
	MinClientNameLength         = 2
	MaxCancellationReasonLength = 500

	// Deposit bounds as a fraction of the total price
	MinDepositRatio = 0.3
	MaxDepositRatio = 1.0

	// A stay shorter than one full day is still billed as one night
	MinNights = 1
)

// BlockingStatuses список статусов, при которых бронь удерживает комнату
// Используется при проверке пересечений интервалов
var BlockingStatuses = []ReservationStatus{
	StatusConfirmed,
	StatusInProgress,
}
