package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations/models"
)

// Service сервис жизненного цикла бронирований: списки, заселение,
// выселение и отмена. Создание брони вынесено в отдельный usecase
type Service struct {
	reservationRepo ReservationRepository
	roomRepo        RoomRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// GetByNumber получает бронирование по его номеру, например "RSV-20250601-001"
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByNumber: repository error for reservation number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List получает бронирования в указанной области выборки.
// Область "arrivals_today" возвращает подтвержденные брони с прибытием сегодня,
// "departures_today" заселенные брони с отъездом сегодня,
// "all" весь список с опциональной фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	scope := strings.TrimSpace(req.Scope)
	if scope == "" {
		scope = models.ScopeAll
	}

	var (
		reservations []*domain.Reservation
		err          error
	)

	switch scope {
	case models.ScopeAll:
		filter, filterErr := req.ToDomainFilter()
		if filterErr != nil {
			s.logger.Warn("List: invalid filter: %v", filterErr)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, filterErr)
		}
		reservations, err = s.reservationRepo.List(ctx, filter)
	case models.ScopeArrivalsToday:
		reservations, err = s.reservationRepo.ListArrivalsOn(ctx, s.timeProvider.Now())
	case models.ScopeDeparturesToday:
		reservations, err = s.reservationRepo.ListDeparturesOn(ctx, s.timeProvider.Now())
	default:
		s.logger.Warn("List: unknown scope=%s", scope)
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidInput, scope)
	}

	if err != nil {
		s.logger.Error("List: repository error for scope=%s: %v", scope, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservationList(reservations), nil
}

// CheckIn заселяет клиента по подтвержденному бронированию.
// Бронь переходит в in_progress, комната помечается занятой.
// Повторное заселение уже заселенной брони не считается ошибкой.
// Заселение возможно только в день прибытия
func (s *Service) CheckIn(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("CheckIn: checking in reservation id=%d", id)

	var result *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		reservation, err := s.getForUpdate(ctx, id, "CheckIn")
		if err != nil {
			return err
		}

		if !reservation.CanCheckIn() {
			s.logger.Warn("CheckIn: reservation id=%d has status=%s, nothing to do", id, reservation.Status)
			result = reservation
			return nil
		}

		now := s.timeProvider.Now()
		if !sameDay(reservation.Arrival, now) {
			s.logger.Warn("CheckIn: reservation id=%d arrival=%s is not today", id, reservation.Arrival.Format(domain.DateFormat))
			return ErrNotArrivalDay
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusInProgress); err != nil {
			return fmt.Errorf("%w: CheckIn - update reservation status: %v", ErrInternal, err)
		}
		if err := s.roomRepo.UpdateStatus(ctx, reservation.RoomID, domain.RoomStatusOccupied); err != nil {
			return fmt.Errorf("%w: CheckIn - update room status: %v", ErrInternal, err)
		}

		reservation.Status = domain.StatusInProgress
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckIn: reservation id=%d now has status=%s", id, result.Status)
	return models.FromDomainReservation(result), nil
}

// CheckOut выселяет клиента по заселенному бронированию.
// Бронь переходит в completed, комната освобождается.
// Повторное выселение завершенной брони не считается ошибкой
func (s *Service) CheckOut(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("CheckOut: checking out reservation id=%d", id)

	var result *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		reservation, err := s.getForUpdate(ctx, id, "CheckOut")
		if err != nil {
			return err
		}

		if !reservation.CanCheckOut() {
			s.logger.Warn("CheckOut: reservation id=%d has status=%s, nothing to do", id, reservation.Status)
			result = reservation
			return nil
		}

		now := s.timeProvider.Now()
		if !sameDay(reservation.Departure, now) {
			s.logger.Warn("CheckOut: reservation id=%d departure=%s is not today", id, reservation.Departure.Format(domain.DateFormat))
			return ErrNotDepartureDay
		}

		if err := s.reservationRepo.UpdateStatus(ctx, id, domain.StatusCompleted); err != nil {
			return fmt.Errorf("%w: CheckOut - update reservation status: %v", ErrInternal, err)
		}
		if err := s.roomRepo.UpdateStatus(ctx, reservation.RoomID, domain.RoomStatusFree); err != nil {
			return fmt.Errorf("%w: CheckOut - update room status: %v", ErrInternal, err)
		}

		reservation.Status = domain.StatusCompleted
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CheckOut: reservation id=%d now has status=%s", id, result.Status)
	return models.FromDomainReservation(result), nil
}

// Cancel отменяет бронирование с указанием причины.
// Если комната была занята этой бронью, она освобождается
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	reason := strings.TrimSpace(req.CancellationReason)
	if len(reason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return nil, fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	var result *domain.Reservation
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		reservation, err := s.getForUpdate(ctx, id, "Cancel")
		if err != nil {
			return err
		}

		if !reservation.CanBeCancelled() {
			s.logger.Warn("Cancel: reservation id=%d has status=%s and cannot be cancelled", id, reservation.Status)
			return ErrCannotCancel
		}

		wasInProgress := reservation.Status == domain.StatusInProgress
		cancelledAt := s.timeProvider.Now()

		if err := s.reservationRepo.Cancel(ctx, id, reason); err != nil {
			return fmt.Errorf("%w: Cancel - cancel reservation: %v", ErrInternal, err)
		}

		// Комната могла быть занята этой бронью: либо клиент уже заселен,
		// либо комнату пометили занятой при брони с заездом в тот же день
		if wasInProgress || sameDay(reservation.Arrival, cancelledAt) {
			room, err := s.roomRepo.GetByID(ctx, reservation.RoomID)
			if err != nil {
				return fmt.Errorf("%w: Cancel - get room: %v", ErrInternal, err)
			}
			if room.Status == domain.RoomStatusOccupied {
				if err := s.roomRepo.UpdateStatus(ctx, room.ID, domain.RoomStatusFree); err != nil {
					return fmt.Errorf("%w: Cancel - update room status: %v", ErrInternal, err)
				}
			}
		}

		reservation.Status = domain.StatusCancelled
		reservation.CancellationReason = &reason
		reservation.CancelledAt = &cancelledAt
		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return models.FromDomainReservation(result), nil
}

func (s *Service) getForUpdate(ctx context.Context, id int64, op string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
