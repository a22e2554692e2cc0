package book_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	roomRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/room"
	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger

	checkInTime  types.TimeString
	checkOutTime types.TimeString
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
	checkInTime types.TimeString,
	checkOutTime types.TimeString,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
		checkInTime:     checkInTime,
		checkOutTime:    checkOutTime,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// проверка пересечений и вставка брони происходят атомарно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookReservation: room=%d, client=%s %s, arrival=%s, departure=%s, party=%d",
		req.RoomID, req.ClientFirstName, req.ClientLastName,
		req.Arrival.Format(domain.DateFormat), req.Departure.Format(domain.DateFormat), req.PartySize)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Нормализуем время прибытия и отъезда по политике отеля.
	// Полуночное время означает, что клиент указал только дату
	arrival, err := normalizeStayTime(req.Arrival, uc.checkInTime)
	if err != nil {
		uc.logger.Error("BookReservation: failed to normalize arrival: %v", err)
		return nil, err
	}
	departure, err := normalizeStayTime(req.Departure, uc.checkOutTime)
	if err != nil {
		uc.logger.Error("BookReservation: failed to normalize departure: %v", err)
		return nil, err
	}

	// 4. Проверяем временные границы проживания
	if err := validateStayInterval(arrival, departure, now); err != nil {
		uc.logger.Warn("BookReservation: stay interval validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Reservation

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем комнату с блокировкой (FOR UPDATE)
		room, err := uc.roomRepo.GetByID(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("BookReservation: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("BookReservation: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 5.2. Комната должна быть пригодна для бронирования
		if !room.IsBookable() {
			uc.logger.Warn("BookReservation: room id=%d has status=%s", room.ID, room.Status)
			return ErrRoomNotBookable
		}

		// 5.3. Вместимость комнаты
		if req.PartySize > room.Capacity {
			uc.logger.Warn("BookReservation: party size %d exceeds capacity %d of room id=%d",
				req.PartySize, room.Capacity, room.ID)
			return ErrPartySizeExceedsCapacity
		}

		// 5.4. Стоимость проживания и задаток
		nights := countNights(arrival, departure)
		totalPrice := float64(nights) * room.NightlyRate

		if err := validateDeposit(req.Deposit, totalPrice); err != nil {
			uc.logger.Warn("BookReservation: deposit validation failed: %v", err)
			return err
		}

		// 5.5. Проверяем пересечение с удерживающими бронями комнаты.
		// Строки блокируются FOR UPDATE до конца транзакции
		blocking, err := uc.reservationRepo.GetBlockingByRoom(txCtx, room.ID, arrival, departure)
		if err != nil {
			uc.logger.Error("BookReservation: failed to get blocking reservations: %v", err)
			return fmt.Errorf("%w: failed to get blocking reservations: %v", ErrInternal, err)
		}

		for _, existing := range blocking {
			if existing.Overlaps(arrival, departure) {
				uc.logger.Warn("BookReservation: room id=%d already booked by reservation %s",
					room.ID, existing.Number)
				return ErrRoomAlreadyBooked
			}
		}

		// 5.6. Генерируем номер брони по количеству созданных сегодня
		createdToday, err := uc.reservationRepo.CountCreatedOn(txCtx, now)
		if err != nil {
			uc.logger.Error("BookReservation: failed to count today's reservations: %v", err)
			return fmt.Errorf("%w: failed to count today's reservations: %v", ErrInternal, err)
		}
		number := domain.FormatReservationNumber(now, createdToday+1)

		// 5.7. Создаем бронирование с денормализацией данных комнаты
		reservation := &domain.Reservation{
			Number:          number,
			RoomID:          room.ID,
			ClientFirstName: strings.TrimSpace(req.ClientFirstName),
			ClientLastName:  strings.TrimSpace(req.ClientLastName),
			ClientPhone:     strings.TrimSpace(req.ClientPhone),
			ClientEmail:     req.ClientEmail,
			Arrival:         arrival,
			Departure:       departure,
			PartySize:       req.PartySize,
			Status:          domain.StatusConfirmed,
			// Денормализация данных комнаты
			RoomNumber:  room.Number,
			NightlyRate: room.NightlyRate,
			Nights:      nights,
			TotalPrice:  totalPrice,
			Deposit:     req.Deposit,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("BookReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		// 5.8. Бронь с заездом сегодня сразу занимает комнату
		if isSameDay(arrival, now) && room.Status == domain.RoomStatusFree {
			if err := uc.roomRepo.UpdateStatus(txCtx, room.ID, domain.RoomStatusOccupied); err != nil {
				uc.logger.Error("BookReservation: failed to mark room occupied: %v", err)
				return fmt.Errorf("%w: failed to mark room occupied: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("BookReservation: successfully created reservation id=%d number=%s", result.ID, result.Number)

	return &Response{
		ID:              result.ID,
		Number:          result.Number,
		RoomID:          result.RoomID,
		ClientFirstName: result.ClientFirstName,
		ClientLastName:  result.ClientLastName,
		ClientPhone:     result.ClientPhone,
		ClientEmail:     result.ClientEmail,
		Arrival:         result.Arrival,
		Departure:       result.Departure,
		PartySize:       result.PartySize,
		RoomNumber:      result.RoomNumber,
		NightlyRate:     result.NightlyRate,
		Nights:          result.Nights,
		TotalPrice:      result.TotalPrice,
		Deposit:         result.Deposit,
		Status:          string(result.Status),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
