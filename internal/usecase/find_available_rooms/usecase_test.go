package find_available_rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/pkg/types"
)

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context, _ domain.RoomFilter) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeReservationRepo struct {
	blocking []*domain.Reservation
}

func (f *fakeReservationRepo) GetBlockingBetween(_ context.Context, _, _ time.Time) ([]*domain.Reservation, error) {
	return f.blocking, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(rooms *fakeRoomRepo, reservations *fakeReservationRepo) *UseCase {
	return NewUseCase(rooms, reservations, nopLogger{},
		types.TimeString("14:00"), types.TimeString("12:00"))
}

func testRooms() []*domain.Room {
	return []*domain.Room{
		{ID: 1, Number: "CH-STD-01-001", Status: domain.RoomStatusFree, Capacity: 2, NightlyRate: 25000},
		{ID: 2, Number: "CH-STD-01-002", Status: domain.RoomStatusFree, Capacity: 2, NightlyRate: 25000},
		{ID: 3, Number: "CH-FAM-02-001", Status: domain.RoomStatusFree, Capacity: 4, NightlyRate: 45000},
	}
}

func TestExecute_AllRoomsFree(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Arrival:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 3)
}

func TestExecute_CapacityFilter(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeReservationRepo{})

	resp, err := uc.Execute(context.Background(), &Request{
		Arrival:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		PartySize: 3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "CH-FAM-02-001", resp.Rooms[0].Number)
}

func TestExecute_BlockedRoomIsExcluded(t *testing.T) {
	reservations := &fakeReservationRepo{
		blocking: []*domain.Reservation{
			{
				RoomID:    1,
				Status:    domain.StatusConfirmed,
				Arrival:   time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC),
				Departure: time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(&fakeRoomRepo{rooms: testRooms()}, reservations)

	resp, err := uc.Execute(context.Background(), &Request{
		Arrival:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	for _, room := range resp.Rooms {
		assert.NotEqual(t, int64(1), room.ID)
	}
}

func TestExecute_BackToBackStayDoesNotBlock(t *testing.T) {
	// Существующая бронь заканчивается ровно в момент запрошенного прибытия
	reservations := &fakeReservationRepo{
		blocking: []*domain.Reservation{
			{
				RoomID:    1,
				Status:    domain.StatusConfirmed,
				Arrival:   time.Date(2025, 6, 7, 14, 0, 0, 0, time.UTC),
				Departure: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			},
		},
	}
	uc := newTestUseCase(&fakeRoomRepo{rooms: testRooms()}, reservations)

	resp, err := uc.Execute(context.Background(), &Request{
		Arrival:   time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 13, 12, 0, 0, 0, time.UTC),
		PartySize: 2,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rooms, 3)
}

func TestExecute_DegenerateIntervalReturnsEmpty(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeReservationRepo{})

	// Прибытие и отъезд в один день: после нормализации
	// отъезд (12:00) оказывается раньше прибытия (14:00)
	resp, err := uc.Execute(context.Background(), &Request{
		Arrival:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Rooms)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{rooms: testRooms()}, &fakeReservationRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		Departure: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		PartySize: 2,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		Arrival:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Departure: time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC),
		PartySize: 0,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
