package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	roomRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/room"
	roomTypeRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/roomtype"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом комнат и их типов
type Service struct {
	roomTypeRepo     RoomTypeRepository
	roomRepo         RoomRepository
	reservationRepo  ReservationRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
	roomNumberPrefix string
}

// NewService создает новый экземпляр сервиса каталога
func NewService(
	roomTypeRepo RoomTypeRepository,
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
	roomNumberPrefix string,
) *Service {
	return &Service{
		roomTypeRepo:     roomTypeRepo,
		roomRepo:         roomRepo,
		reservationRepo:  reservationRepo,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
		roomNumberPrefix: roomNumberPrefix,
	}
}

// Типы комнат

// ListRoomTypes получает все типы комнат
func (s *Service) ListRoomTypes(ctx context.Context) (*models.RoomTypeListResponse, error) {
	types, err := s.roomTypeRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRoomTypes: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRoomTypes - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomTypeList(types), nil
}

// GetRoomType получает тип комнаты по ID
func (s *Service) GetRoomType(ctx context.Context, id int64) (*models.RoomTypeResponse, error) {
	roomType, err := s.roomTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		s.logger.Error("GetRoomType: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoomType - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomType(roomType), nil
}

// CreateRoomType создает новый тип комнаты
func (s *Service) CreateRoomType(ctx context.Context, req *models.SaveRoomTypeRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("CreateRoomType: creating room type code=%s label=%s", req.Code, req.Label)

	if err := validateRoomTypeRequest(req); err != nil {
		s.logger.Warn("CreateRoomType: invalid request: %v", err)
		return nil, err
	}

	roomType := &domain.RoomType{
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Label:       strings.TrimSpace(req.Label),
		Description: req.Description,
		Capacity:    req.Capacity,
		NightlyRate: req.NightlyRate,
	}

	created, err := s.roomTypeRepo.Create(ctx, roomType)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrDuplicateCode) {
			return nil, ErrDuplicateCode
		}
		s.logger.Error("CreateRoomType: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRoomType - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRoomType: created room type id=%d code=%s", created.ID, created.Code)
	return models.FromDomainRoomType(created), nil
}

// UpdateRoomType обновляет тип комнаты
// Изменение тарифа затрагивает только будущие бронирования: существующие
// брони хранят снимок тарифа на момент создания
func (s *Service) UpdateRoomType(ctx context.Context, id int64, req *models.SaveRoomTypeRequest) (*models.RoomTypeResponse, error) {
	s.logger.Info("UpdateRoomType: updating room type id=%d", id)

	if err := validateRoomTypeRequest(req); err != nil {
		s.logger.Warn("UpdateRoomType: invalid request for id=%d: %v", id, err)
		return nil, err
	}

	var updated *domain.RoomType
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		roomType, err := s.roomTypeRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("%w: UpdateRoomType - get room type: %v", ErrInternal, err)
		}

		roomType.Code = strings.ToUpper(strings.TrimSpace(req.Code))
		roomType.Label = strings.TrimSpace(req.Label)
		roomType.Description = req.Description
		roomType.Capacity = req.Capacity
		roomType.NightlyRate = req.NightlyRate

		if err := s.roomTypeRepo.Update(ctx, roomType); err != nil {
			if errors.Is(err, roomTypeRepo.ErrDuplicateCode) {
				return ErrDuplicateCode
			}
			return fmt.Errorf("%w: UpdateRoomType - update room type: %v", ErrInternal, err)
		}

		updated = roomType
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateRoomType: updated room type id=%d", id)
	return models.FromDomainRoomType(updated), nil
}

// DeleteRoomType удаляет тип комнаты
// Тип с привязанными комнатами удалить нельзя
func (s *Service) DeleteRoomType(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRoomType: deleting room type id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		count, err := s.roomRepo.CountByType(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: DeleteRoomType - count rooms: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("DeleteRoomType: room type id=%d still has %d rooms", id, count)
			return ErrRoomTypeInUse
		}

		if err := s.roomTypeRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("%w: DeleteRoomType - delete room type: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("DeleteRoomType: deleted room type id=%d", id)
	return nil
}

// Комнаты

// ListRooms получает комнаты с опциональной фильтрацией по типу и статусу
func (s *Service) ListRooms(ctx context.Context, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListRooms: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status filter", ErrInvalidInput)
	}

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetRoom получает комнату по ID
func (s *Service) GetRoom(ctx context.Context, id int64) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoom: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetRoom - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// GetRoomByNumber получает комнату по ее номеру, например "CH-STD-01-003"
func (s *Service) GetRoomByNumber(ctx context.Context, number string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetRoomByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetRoomByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// CreateRoom создает новую комнату
// Номер комнаты генерируется автоматически по схеме PREFIX-TYPE-FLOOR-SEQ,
// где SEQ это следующий свободный порядковый номер для пары тип/этаж
func (s *Service) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("CreateRoom: creating room typeId=%d floor=%d", req.RoomTypeID, req.Floor)

	if req.Floor < 0 {
		s.logger.Warn("CreateRoom: negative floor %d", req.Floor)
		return nil, fmt.Errorf("%w: floor must not be negative", ErrInvalidInput)
	}

	lastRenovated, err := parseOptionalDate(req.LastRenovated)
	if err != nil {
		s.logger.Warn("CreateRoom: invalid lastRenovated date: %v", err)
		return nil, fmt.Errorf("%w: invalid lastRenovated date", ErrInvalidInput)
	}

	var created *domain.Room
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		roomType, err := s.roomTypeRepo.GetByID(ctx, req.RoomTypeID)
		if err != nil {
			if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("%w: CreateRoom - get room type: %v", ErrInternal, err)
		}

		numbers, err := s.roomRepo.ListNumbersByTypeAndFloor(ctx, roomType.ID, req.Floor)
		if err != nil {
			return fmt.Errorf("%w: CreateRoom - list room numbers: %v", ErrInternal, err)
		}

		seq := domain.NextRoomSeq(s.roomNumberPrefix, roomType.Code, req.Floor, numbers)
		room := &domain.Room{
			Number:          domain.FormatRoomNumber(s.roomNumberPrefix, roomType.Code, req.Floor, seq),
			RoomTypeID:      &roomType.ID,
			Floor:           req.Floor,
			Status:          domain.RoomStatusFree,
			AirConditioning: req.AirConditioning,
			Balcony:         req.Balcony,
			OceanView:       req.OceanView,
			LastRenovated:   lastRenovated,
		}

		if _, err := s.roomRepo.Create(ctx, room); err != nil {
			if errors.Is(err, roomRepo.ErrDuplicateNumber) {
				return ErrDuplicateNumber
			}
			return fmt.Errorf("%w: CreateRoom - create room: %v", ErrInternal, err)
		}

		room.TypeCode = roomType.Code
		room.TypeLabel = roomType.Label
		room.Capacity = roomType.Capacity
		room.NightlyRate = roomType.NightlyRate

		created = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("CreateRoom: created room id=%d number=%s", created.ID, created.Number)
	return models.FromDomainRoom(created), nil
}

// UpdateRoom обновляет комнату
// Перенос комнаты на другой этаж или смена типа перегенерируют ее номер
// и запрещены, пока у комнаты есть будущие активные бронирования
func (s *Service) UpdateRoom(ctx context.Context, id int64, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateRoom: updating room id=%d", id)

	var status *domain.RoomStatus
	if req.Status != nil {
		converted, err := models.ToDomainRoomStatus(*req.Status)
		if err != nil {
			s.logger.Warn("UpdateRoom: invalid status=%s for id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &converted
	}

	lastRenovated, err := parseOptionalDate(req.LastRenovated)
	if err != nil {
		s.logger.Warn("UpdateRoom: invalid lastRenovated date for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: invalid lastRenovated date", ErrInvalidInput)
	}

	var updated *domain.Room
	err = s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		room, err := s.roomRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: UpdateRoom - get room: %v", ErrInternal, err)
		}

		typeChanged := req.RoomTypeID != nil && (room.RoomTypeID == nil || *req.RoomTypeID != *room.RoomTypeID)
		floorChanged := req.Floor != nil && *req.Floor != room.Floor

		if typeChanged || floorChanged {
			count, err := s.reservationRepo.CountFutureActive(ctx, id, s.timeProvider.Now())
			if err != nil {
				return fmt.Errorf("%w: UpdateRoom - count reservations: %v", ErrInternal, err)
			}
			if count > 0 {
				s.logger.Warn("UpdateRoom: room id=%d has %d upcoming reservations", id, count)
				return ErrRoomHasUpcomingReservations
			}
		}

		if req.Floor != nil {
			if *req.Floor < 0 {
				return fmt.Errorf("%w: floor must not be negative", ErrInvalidInput)
			}
			room.Floor = *req.Floor
		}
		if status != nil {
			room.Status = *status
		}
		if req.AirConditioning != nil {
			room.AirConditioning = *req.AirConditioning
		}
		if req.Balcony != nil {
			room.Balcony = *req.Balcony
		}
		if req.OceanView != nil {
			room.OceanView = *req.OceanView
		}
		if lastRenovated != nil {
			room.LastRenovated = lastRenovated
		}

		roomType, err := s.resolveRoomType(ctx, room, req.RoomTypeID)
		if err != nil {
			return err
		}

		if typeChanged || floorChanged {
			numbers, err := s.roomRepo.ListNumbersByTypeAndFloor(ctx, roomType.ID, room.Floor)
			if err != nil {
				return fmt.Errorf("%w: UpdateRoom - list room numbers: %v", ErrInternal, err)
			}
			seq := domain.NextRoomSeq(s.roomNumberPrefix, roomType.Code, room.Floor, numbers)
			room.Number = domain.FormatRoomNumber(s.roomNumberPrefix, roomType.Code, room.Floor, seq)
			room.RoomTypeID = &roomType.ID
		}

		if err := s.roomRepo.Update(ctx, room); err != nil {
			if errors.Is(err, roomRepo.ErrDuplicateNumber) {
				return ErrDuplicateNumber
			}
			return fmt.Errorf("%w: UpdateRoom - update room: %v", ErrInternal, err)
		}

		room.TypeCode = roomType.Code
		room.TypeLabel = roomType.Label
		room.Capacity = roomType.Capacity
		room.NightlyRate = roomType.NightlyRate

		updated = room
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateRoom: updated room id=%d number=%s", id, updated.Number)
	return models.FromDomainRoom(updated), nil
}

// resolveRoomType возвращает актуальный тип комнаты с учетом запрошенной смены
func (s *Service) resolveRoomType(ctx context.Context, room *domain.Room, requestedTypeID *int64) (*domain.RoomType, error) {
	typeID := room.RoomTypeID
	if requestedTypeID != nil {
		typeID = requestedTypeID
	}
	if typeID == nil {
		return nil, fmt.Errorf("%w: room has no type", ErrInvalidInput)
	}

	roomType, err := s.roomTypeRepo.GetByID(ctx, *typeID)
	if err != nil {
		if errors.Is(err, roomTypeRepo.ErrRoomTypeNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("%w: resolveRoomType - get room type: %v", ErrInternal, err)
	}
	return roomType, nil
}

// DeleteRoom удаляет комнату
// Комнату с будущими активными бронированиями удалить нельзя
func (s *Service) DeleteRoom(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRoom: deleting room id=%d", id)

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		count, err := s.reservationRepo.CountFutureActive(ctx, id, s.timeProvider.Now())
		if err != nil {
			return fmt.Errorf("%w: DeleteRoom - count reservations: %v", ErrInternal, err)
		}
		if count > 0 {
			s.logger.Warn("DeleteRoom: room id=%d has %d upcoming reservations", id, count)
			return ErrRoomHasUpcomingReservations
		}

		if err := s.roomRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: DeleteRoom - delete room: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("DeleteRoom: deleted room id=%d", id)
	return nil
}

func validateRoomTypeRequest(req *models.SaveRoomTypeRequest) error {
	if strings.TrimSpace(req.Code) == "" {
		return fmt.Errorf("%w: code is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Label) == "" {
		return fmt.Errorf("%w: label is required", ErrInvalidInput)
	}
	if req.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}
	if req.NightlyRate < 0 {
		return fmt.Errorf("%w: nightly rate must not be negative", ErrInvalidInput)
	}
	return nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	parsed, err := time.Parse(domain.DateFormat, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
