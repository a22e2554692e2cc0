package book_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	roomRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/room"
	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

// Фейки зависимостей

type fakeReservationRepo struct {
	blocking     []*domain.Reservation
	createdToday int

	created *domain.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	stored := *reservation
	stored.ID = 101
	stored.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeReservationRepo) GetBlockingByRoom(_ context.Context, _ int64, _, _ time.Time) ([]*domain.Reservation, error) {
	return f.blocking, nil
}

func (f *fakeReservationRepo) CountCreatedOn(_ context.Context, _ time.Time) (int, error) {
	return f.createdToday, nil
}

type fakeRoomRepo struct {
	room *domain.Room

	statusUpdates map[int64]domain.RoomStatus
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	if f.room == nil || f.room.ID != id {
		return nil, roomRepo.ErrRoomNotFound
	}
	copied := *f.room
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[int64]domain.RoomStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(reservations *fakeReservationRepo, rooms *fakeRoomRepo, now time.Time) *UseCase {
	uc := NewUseCase(
		reservations,
		rooms,
		fakeTxManager{},
		nopLogger{},
		types.TimeString("14:00"),
		types.TimeString("12:00"),
	)
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func stdRoom() *domain.Room {
	return &domain.Room{
		ID:          1,
		Number:      "CH-STD-01-001",
		Status:      domain.RoomStatusFree,
		Capacity:    2,
		NightlyRate: 25000,
	}
}

func TestExecute_Success(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{}
	rooms := &fakeRoomRepo{room: stdRoom()}
	uc := newTestUseCase(reservations, rooms, now)

	req := validRequest()
	req.Deposit = 25000 // 3 ночи по 25000, задаток в границах [30%, 100%]

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "RSV-20250601-001", resp.Number)
	assert.Equal(t, "CH-STD-01-001", resp.RoomNumber)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 75000.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	// Полуночные даты нормализуются по политике отеля
	assert.Equal(t, time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC), resp.Arrival)
	assert.Equal(t, time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC), resp.Departure)

	// Заезд не сегодня, комната остается свободной
	assert.Empty(t, rooms.statusUpdates)
}

func TestExecute_WithoutEmail(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{}
	rooms := &fakeRoomRepo{room: stdRoom()}
	uc := newTestUseCase(reservations, rooms, now)

	req := validRequest()
	req.Deposit = 25000
	req.ClientEmail = nil

	// Email опционален: бронь создается, в хранилище уходит nil
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "RSV-20250601-001", resp.Number)
	assert.Nil(t, resp.ClientEmail)
	require.NotNil(t, reservations.created)
	assert.Nil(t, reservations.created.ClientEmail)
}

func TestExecute_NumberContinuesDailySequence(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{createdToday: 1}
	rooms := &fakeRoomRepo{room: stdRoom()}
	uc := newTestUseCase(reservations, rooms, now)

	req := validRequest()
	req.Deposit = 25000

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "RSV-20250601-002", resp.Number)
}

func TestExecute_SameDayArrivalOccupiesRoom(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{}
	rooms := &fakeRoomRepo{room: stdRoom()}
	uc := newTestUseCase(reservations, rooms, now)

	req := validRequest()
	req.Deposit = 25000

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.RoomStatusOccupied, rooms.statusUpdates[1])
}

func TestExecute_RoomNotFound(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRoomRepo{}, now)

	req := validRequest()
	req.Deposit = 25000

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_RoomNotBookable(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	room := stdRoom()
	room.Status = domain.RoomStatusOutOfService
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRoomRepo{room: room}, now)

	req := validRequest()
	req.Deposit = 25000

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotBookable)
}

func TestExecute_MaintenanceRoomBookableForFutureStay(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	room := stdRoom()
	room.Status = domain.RoomStatusMaintenance
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRoomRepo{room: room}, now)

	req := validRequest()
	req.Deposit = 25000

	// Ремонт не блокирует бронь на будущие даты, блокирует только вывод из эксплуатации
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "RSV-20250601-001", resp.Number)
}

func TestExecute_PartySizeExceedsCapacity(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRoomRepo{room: stdRoom()}, now)

	req := validRequest()
	req.Deposit = 25000
	req.PartySize = 3

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPartySizeExceedsCapacity)
}

func TestExecute_OverlappingReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{
		blocking: []*domain.Reservation{
			{
				Number:    "RSV-20250520-001",
				Status:    domain.StatusConfirmed,
				Arrival:   time.Date(2025, 6, 12, 14, 0, 0, 0, time.UTC),
				Departure: time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(reservations, &fakeRoomRepo{room: stdRoom()}, now)

	req := validRequest()
	req.Deposit = 25000

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomAlreadyBooked)
}

func TestExecute_BackToBackStayIsAllowed(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	reservations := &fakeReservationRepo{
		blocking: []*domain.Reservation{
			{
				Number:    "RSV-20250520-001",
				Status:    domain.StatusConfirmed,
				Arrival:   time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
				Departure: time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(reservations, &fakeRoomRepo{room: stdRoom()}, now)

	req := validRequest()
	req.Deposit = 25000

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ArrivalInPast(t *testing.T) {
	now := time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRoomRepo{room: stdRoom()}, now)

	req := validRequest()
	req.Deposit = 25000

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrArrivalInPast)
}

func TestExecute_DepositOutOfRange(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeRoomRepo{room: stdRoom()}, now)

	req := validRequest()
	req.Deposit = 10000 // меньше 30% от 75000

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDepositOutOfRange)
}
