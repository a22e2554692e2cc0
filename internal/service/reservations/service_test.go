package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	reservationRepo "github.com/ouleymatou/HMS-ReservationService/internal/infra/storage/reservation"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reservations/models"
)

// Фейки зависимостей

type fakeReservationRepo struct {
	reservations map[int64]*domain.Reservation

	statusUpdates map[int64]domain.ReservationStatus
	cancelled     map[int64]string
}

func newFakeReservationRepo(reservations ...*domain.Reservation) *fakeReservationRepo {
	f := &fakeReservationRepo{
		reservations:  make(map[int64]*domain.Reservation),
		statusUpdates: make(map[int64]domain.ReservationStatus),
		cancelled:     make(map[int64]string),
	}
	for _, r := range reservations {
		f.reservations[r.ID] = r
	}
	return f
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *reservation
	return &copied, nil
}

func (f *fakeReservationRepo) GetByNumber(_ context.Context, number string) (*domain.Reservation, error) {
	for _, r := range f.reservations {
		if r.Number == number {
			copied := *r
			return &copied, nil
		}
	}
	return nil, reservationRepo.ErrReservationNotFound
}

func (f *fakeReservationRepo) List(_ context.Context, _ domain.ReservationFilter) ([]*domain.Reservation, error) {
	result := make([]*domain.Reservation, 0, len(f.reservations))
	for _, r := range f.reservations {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeReservationRepo) ListArrivalsOn(_ context.Context, day time.Time) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.Status == domain.StatusConfirmed && sameDay(r.Arrival, day) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) ListDeparturesOn(_ context.Context, day time.Time) ([]*domain.Reservation, error) {
	var result []*domain.Reservation
	for _, r := range f.reservations {
		if r.Status == domain.StatusInProgress && sameDay(r.Departure, day) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id int64, status domain.ReservationStatus) error {
	f.statusUpdates[id] = status
	f.reservations[id].Status = status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelled[id] = reason
	f.reservations[id].Status = domain.StatusCancelled
	return nil
}

type fakeRoomRepo struct {
	rooms map[int64]*domain.Room

	statusUpdates map[int64]domain.RoomStatus
}

func newFakeRoomRepo(rooms ...*domain.Room) *fakeRoomRepo {
	f := &fakeRoomRepo{
		rooms:         make(map[int64]*domain.Room),
		statusUpdates: make(map[int64]domain.RoomStatus),
	}
	for _, r := range rooms {
		f.rooms[r.ID] = r
	}
	return f
}

func (f *fakeRoomRepo) GetByID(_ context.Context, id int64) (*domain.Room, error) {
	room, ok := f.rooms[id]
	if !ok {
		return nil, assert.AnError
	}
	copied := *room
	return &copied, nil
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id int64, status domain.RoomStatus) error {
	f.statusUpdates[id] = status
	f.rooms[id].Status = status
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

func newTestService(reservations *fakeReservationRepo, rooms *fakeRoomRepo, now time.Time) *Service {
	return NewService(reservations, rooms, fakeTxManager{}, fixedTimeProvider{now: now}, nopLogger{})
}

func confirmedReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:        10,
		Number:    "RSV-20250601-001",
		RoomID:    1,
		Status:    domain.StatusConfirmed,
		Arrival:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), newFakeRoomRepo(), time.Now())

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestCheckIn_OnArrivalDay(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation())
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusFree})
	svc := newTestService(reservations, rooms, now)

	resp, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	assert.Equal(t, domain.StatusInProgress, reservations.statusUpdates[10])
	assert.Equal(t, domain.RoomStatusOccupied, rooms.statusUpdates[1])
}

func TestCheckIn_WrongDay(t *testing.T) {
	now := time.Date(2025, 6, 9, 15, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation())
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusFree})
	svc := newTestService(reservations, rooms, now)

	_, err := svc.CheckIn(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNotArrivalDay)
	assert.Empty(t, reservations.statusUpdates)
}

func TestCheckIn_AlreadyCheckedInIsNoop(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	reservation := confirmedReservation()
	reservation.Status = domain.StatusInProgress
	reservations := newFakeReservationRepo(reservation)
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusOccupied})
	svc := newTestService(reservations, rooms, now)

	resp, err := svc.CheckIn(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusInProgress), resp.Status)
	assert.Empty(t, reservations.statusUpdates)
	assert.Empty(t, rooms.statusUpdates)
}

func TestCheckOut_OnDepartureDay(t *testing.T) {
	now := time.Date(2025, 6, 13, 11, 0, 0, 0, time.UTC)
	reservation := confirmedReservation()
	reservation.Status = domain.StatusInProgress
	reservations := newFakeReservationRepo(reservation)
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusOccupied})
	svc := newTestService(reservations, rooms, now)

	resp, err := svc.CheckOut(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.RoomStatusFree, rooms.statusUpdates[1])
}

func TestCheckOut_WrongDay(t *testing.T) {
	now := time.Date(2025, 6, 12, 11, 0, 0, 0, time.UTC)
	reservation := confirmedReservation()
	reservation.Status = domain.StatusInProgress
	reservations := newFakeReservationRepo(reservation)
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusOccupied})
	svc := newTestService(reservations, rooms, now)

	_, err := svc.CheckOut(context.Background(), 10)
	assert.ErrorIs(t, err, ErrNotDepartureDay)
}

func TestCheckOut_NotCheckedInIsNoop(t *testing.T) {
	now := time.Date(2025, 6, 13, 11, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation())
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusFree})
	svc := newTestService(reservations, rooms, now)

	resp, err := svc.CheckOut(context.Background(), 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Empty(t, reservations.statusUpdates)
}

func TestCancel_ConfirmedReservation(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation())
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusFree})
	svc := newTestService(reservations, rooms, now)

	resp, err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{
		CancellationReason: "changement de programme",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Equal(t, "changement de programme", reservations.cancelled[10])
	// Ответ отражает момент отмены, сохраняемый репозиторием
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, now.Format(time.RFC3339), *resp.CancelledAt)
	// Заезд не сегодня и клиент не заселен, комната не трогается
	assert.Empty(t, rooms.statusUpdates)
}

func TestCancel_InProgressFreesRoom(t *testing.T) {
	now := time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC)
	reservation := confirmedReservation()
	reservation.Status = domain.StatusInProgress
	reservations := newFakeReservationRepo(reservation)
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusOccupied})
	svc := newTestService(reservations, rooms, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.RoomStatusFree, rooms.statusUpdates[1])
}

func TestCancel_SameDayArrivalFreesOccupiedRoom(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation())
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusOccupied})
	svc := newTestService(reservations, rooms, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{})
	require.NoError(t, err)

	assert.Equal(t, domain.RoomStatusFree, rooms.statusUpdates[1])
}

func TestCancel_CompletedReservation(t *testing.T) {
	now := time.Date(2025, 6, 20, 10, 0, 0, 0, time.UTC)
	reservation := confirmedReservation()
	reservation.Status = domain.StatusCompleted
	reservations := newFakeReservationRepo(reservation)
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusFree})
	svc := newTestService(reservations, rooms, now)

	_, err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation())
	rooms := newFakeRoomRepo(&domain.Room{ID: 1, Status: domain.RoomStatusFree})
	svc := newTestService(reservations, rooms, now)

	reason := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range reason {
		reason[i] = 'a'
	}

	_, err := svc.Cancel(context.Background(), 10, &models.CancelReservationRequest{
		CancellationReason: string(reason),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_ScopeArrivalsToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	other := confirmedReservation()
	other.ID = 11
	other.Arrival = time.Date(2025, 6, 20, 14, 0, 0, 0, time.UTC)
	reservations := newFakeReservationRepo(confirmedReservation(), other)
	svc := newTestService(reservations, newFakeRoomRepo(), now)

	resp, err := svc.List(context.Background(), &models.ListReservationsRequest{
		Scope: models.ScopeArrivalsToday,
	})
	require.NoError(t, err)
	require.Len(t, resp.Reservations, 1)
	assert.Equal(t, int64(10), resp.Reservations[0].ID)
}

func TestList_UnknownScope(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), newFakeRoomRepo(), time.Now())

	_, err := svc.List(context.Background(), &models.ListReservationsRequest{Scope: "tomorrow"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
