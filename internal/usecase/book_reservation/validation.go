package book_reservation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

var (
	// nameRegexp допускает буквы с диакритикой, пробелы, апострофы и дефисы
	nameRegexp = regexp.MustCompile(`^[A-Za-zÀ-ÖØ-öø-ÿ\s'-]+$`)

	// phoneRegexp сенегальский мобильный номер: префикс оператора и 7 цифр
	phoneRegexp = regexp.MustCompile(`^(77|78|75|76|70)\d{7}$`)

	emailRegexp = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[a-zA-Z]{2,}$`)
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if err := validateName(req.ClientFirstName, "first name"); err != nil {
		return err
	}
	if err := validateName(req.ClientLastName, "last name"); err != nil {
		return err
	}

	if !phoneRegexp.MatchString(strings.TrimSpace(req.ClientPhone)) {
		return fmt.Errorf("%w: invalid phone number", ErrInvalidInput)
	}

	if req.ClientEmail != nil && strings.TrimSpace(*req.ClientEmail) != "" {
		if !emailRegexp.MatchString(strings.TrimSpace(*req.ClientEmail)) {
			return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
		}
	}

	if req.Arrival.IsZero() {
		return fmt.Errorf("%w: arrival is required", ErrInvalidInput)
	}
	if req.Departure.IsZero() {
		return fmt.Errorf("%w: departure is required", ErrInvalidInput)
	}

	if req.PartySize < 1 {
		return fmt.Errorf("%w: party size must be at least 1", ErrInvalidInput)
	}

	if req.Deposit < 0 {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}

	return nil
}

func validateName(name, field string) error {
	trimmed := strings.TrimSpace(name)
	if len([]rune(trimmed)) < domain.MinClientNameLength {
		return fmt.Errorf("%w: %s is too short", ErrInvalidInput, field)
	}
	if !nameRegexp.MatchString(trimmed) {
		return fmt.Errorf("%w: %s contains invalid characters", ErrInvalidInput, field)
	}
	return nil
}

// normalizeStayTime подставляет политику отеля вместо полуночного времени.
// Прибытие и отъезд, заданные только датой, получают стандартный час
// заезда и выезда соответственно
func normalizeStayTime(t time.Time, policy types.TimeString) (time.Time, error) {
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return t, nil
	}
	normalized, err := policy.At(t)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to apply stay time policy: %v", ErrInternal, err)
	}
	return normalized, nil
}

// validateStayInterval проверяет временные границы проживания
func validateStayInterval(arrival, departure, now time.Time) error {
	if arrival.Before(now) {
		return ErrArrivalInPast
	}
	if !departure.After(arrival) {
		return ErrDepartureBeforeArrival
	}
	return nil
}

// countNights считает количество ночей между датами прибытия и отъезда.
// Время суток не учитывается, минимум одна ночь
func countNights(arrival, departure time.Time) int {
	arrivalDate := time.Date(arrival.Year(), arrival.Month(), arrival.Day(), 0, 0, 0, 0, time.UTC)
	departureDate := time.Date(departure.Year(), departure.Month(), departure.Day(), 0, 0, 0, 0, time.UTC)

	nights := int(departureDate.Sub(arrivalDate).Hours() / 24)
	if nights < domain.MinNights {
		nights = domain.MinNights
	}
	return nights
}

// validateDeposit проверяет, что задаток лежит в допустимых границах
// от полной стоимости проживания
func validateDeposit(deposit, totalPrice float64) error {
	minDeposit := totalPrice * domain.MinDepositRatio
	maxDeposit := totalPrice * domain.MaxDepositRatio

	if deposit < minDeposit || deposit > maxDeposit {
		return fmt.Errorf("%w: deposit must be between %.2f and %.2f", ErrDepositOutOfRange, minDeposit, maxDeposit)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
