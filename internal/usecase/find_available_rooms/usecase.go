package find_available_rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

// UseCase use case для поиска свободных комнат на интервал проживания
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger

	checkInTime  types.TimeString
	checkOutTime types.TimeString
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	logger Logger,
	checkInTime types.TimeString,
	checkOutTime types.TimeString,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
		checkInTime:     checkInTime,
		checkOutTime:    checkOutTime,
	}
}

// Execute выполняет use case поиска свободных комнат.
// Комната попадает в результат, если она в статусе free, вмещает гостей
// и ее удерживающие брони не пересекаются с запрошенным полуинтервалом.
// Вырожденный интервал (отъезд не позже прибытия) дает пустой результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindAvailableRooms: arrival=%s, departure=%s, party=%d",
		req.Arrival.Format(domain.DateFormat), req.Departure.Format(domain.DateFormat), req.PartySize)

	if req.Arrival.IsZero() || req.Departure.IsZero() {
		uc.logger.Warn("FindAvailableRooms: arrival and departure are required")
		return nil, fmt.Errorf("%w: arrival and departure are required", ErrInvalidInput)
	}
	if req.PartySize < 1 {
		uc.logger.Warn("FindAvailableRooms: invalid party size %d", req.PartySize)
		return nil, fmt.Errorf("%w: party size must be at least 1", ErrInvalidInput)
	}

	arrival, err := applyTimePolicy(req.Arrival, uc.checkInTime)
	if err != nil {
		return nil, err
	}
	departure, err := applyTimePolicy(req.Departure, uc.checkOutTime)
	if err != nil {
		return nil, err
	}

	if !departure.After(arrival) {
		uc.logger.Info("FindAvailableRooms: degenerate interval, returning empty result")
		return &Response{Rooms: []AvailableRoom{}}, nil
	}

	freeStatus := domain.RoomStatusFree
	rooms, err := uc.roomRepo.List(ctx, domain.RoomFilter{Status: &freeStatus})
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	blocking, err := uc.reservationRepo.GetBlockingBetween(ctx, arrival, departure)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: failed to get blocking reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocking reservations: %v", ErrInternal, err)
	}

	blockedRooms := collectBlockedRooms(blocking, arrival, departure)

	result := make([]AvailableRoom, 0, len(rooms))
	for _, room := range rooms {
		if room.Capacity < req.PartySize {
			continue
		}
		if blockedRooms[room.ID] {
			continue
		}
		result = append(result, AvailableRoom{
			ID:              room.ID,
			Number:          room.Number,
			Floor:           room.Floor,
			TypeCode:        room.TypeCode,
			TypeLabel:       room.TypeLabel,
			Capacity:        room.Capacity,
			NightlyRate:     room.NightlyRate,
			AirConditioning: room.AirConditioning,
			Balcony:         room.Balcony,
			OceanView:       room.OceanView,
		})
	}

	uc.logger.Info("FindAvailableRooms: %d of %d free rooms available", len(result), len(rooms))
	return &Response{Rooms: result}, nil
}

// collectBlockedRooms отмечает комнаты, брони которых пересекаются
// с запрошенным полуинтервалом. Стык впритык (отъезд одного клиента
// в момент прибытия другого) пересечением не считается
func collectBlockedRooms(blocking []*domain.Reservation, arrival, departure time.Time) map[int64]bool {
	blocked := make(map[int64]bool)
	for _, reservation := range blocking {
		if reservation.Overlaps(arrival, departure) {
			blocked[reservation.RoomID] = true
		}
	}
	return blocked
}

// applyTimePolicy подставляет стандартный час заезда или выезда,
// когда время задано только датой
func applyTimePolicy(t time.Time, policy types.TimeString) (time.Time, error) {
	if t.Hour() != 0 || t.Minute() != 0 || t.Second() != 0 || t.Nanosecond() != 0 {
		return t, nil
	}
	applied, err := policy.At(t)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: failed to apply stay time policy: %v", ErrInternal, err)
	}
	return applied, nil
}
