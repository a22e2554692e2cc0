package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports/models"
)

// Фейки зависимостей

type fakeStatsRepo struct {
	revenue       float64
	nights        int
	avgNights     float64
	count         int
	cancellations int
	byMonth       []*domain.MonthCount
	nightsByMonth []*domain.MonthNights
	byRoom        []*domain.RoomCount
	byType        []*domain.TypeCount
	byClient      []*domain.ClientCount
}

func (f *fakeStatsRepo) SumRevenueBetween(_ context.Context, _, _ time.Time) (float64, error) {
	return f.revenue, nil
}

func (f *fakeStatsRepo) SumNightsBetween(_ context.Context, _, _ time.Time) (int, error) {
	return f.nights, nil
}

func (f *fakeStatsRepo) AvgNightsBetween(_ context.Context, _, _ time.Time) (float64, error) {
	return f.avgNights, nil
}

func (f *fakeStatsRepo) CountBetween(_ context.Context, _, _ time.Time) (int, error) {
	return f.count, nil
}

func (f *fakeStatsRepo) CountCancelledBetween(_ context.Context, _, _ time.Time) (int, error) {
	return f.cancellations, nil
}

func (f *fakeStatsRepo) CountByMonthBetween(_ context.Context, _, _ time.Time) ([]*domain.MonthCount, error) {
	return f.byMonth, nil
}

func (f *fakeStatsRepo) SumNightsByMonthBetween(_ context.Context, _, _ time.Time) ([]*domain.MonthNights, error) {
	return f.nightsByMonth, nil
}

func (f *fakeStatsRepo) CountByRoomBetween(_ context.Context, _, _ time.Time) ([]*domain.RoomCount, error) {
	return f.byRoom, nil
}

func (f *fakeStatsRepo) CountByTypeBetween(_ context.Context, _, _ time.Time) ([]*domain.TypeCount, error) {
	return f.byType, nil
}

func (f *fakeStatsRepo) CountByClientBetween(_ context.Context, _, _ time.Time) ([]*domain.ClientCount, error) {
	return f.byClient, nil
}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(_ context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	if filter.Status == nil {
		return f.rooms, nil
	}
	var result []*domain.Room
	for _, room := range f.rooms {
		if room.Status == *filter.Status {
			result = append(result, room)
		}
	}
	return result, nil
}

func (f *fakeRoomRepo) Count(_ context.Context) (int, error) {
	return len(f.rooms), nil
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

func TestSummary(t *testing.T) {
	stats := &fakeStatsRepo{
		revenue:       450000,
		nights:        18,
		avgNights:     3,
		count:         6,
		cancellations: 1,
		byMonth: []*domain.MonthCount{
			{Month: "2025-06", Count: 4},
			{Month: "2025-07", Count: 2},
		},
		nightsByMonth: []*domain.MonthNights{
			{Month: "2025-06", Nights: 12},
			{Month: "2025-07", Nights: 6},
		},
		byRoom: []*domain.RoomCount{
			{RoomID: 1, RoomNumber: "CH-STD-01-001", Count: 4},
			{RoomID: 2, RoomNumber: "CH-STD-01-002", Count: 2},
		},
		byType: []*domain.TypeCount{
			{TypeLabel: "Standard", Count: 6},
		},
		byClient: []*domain.ClientCount{
			{FullName: "Awa Ndiaye", Count: 3},
		},
	}
	rooms := &fakeRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, Number: "CH-STD-01-001", Status: domain.RoomStatusOccupied},
			{ID: 2, Number: "CH-STD-01-002", Status: domain.RoomStatusFree},
			{ID: 3, Number: "CH-STD-01-003", Status: domain.RoomStatusFree},
		},
	}
	svc := NewService(stats, rooms, fixedTimeProvider{}, nopLogger{})

	resp, err := svc.Summary(context.Background(), &models.StatisticsRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 450000.0, resp.Revenue)
	assert.Equal(t, 18, resp.NightsSold)
	assert.Equal(t, 6, resp.ReservationCount)
	assert.Equal(t, 1, resp.Cancellations)
	assert.Equal(t, 3.0, resp.AverageStay)

	// 18 ночей на 3 комнаты за 30 дней (конец включительно): 18/90 = 20%
	assert.InDelta(t, 20.0, resp.OccupancyRate, 0.001)

	require.NotNil(t, resp.MostReservedRoom)
	assert.Equal(t, "CH-STD-01-001", resp.MostReservedRoom.RoomNumber)

	// Комната без единой брони выигрывает у комнат с бронями
	require.NotNil(t, resp.LeastReservedRoom)
	assert.Equal(t, "CH-STD-01-003", resp.LeastReservedRoom.RoomNumber)
	assert.Equal(t, 0, resp.LeastReservedRoom.Count)

	require.NotNil(t, resp.MostRequestedType)
	assert.Equal(t, "Standard", resp.MostRequestedType.TypeLabel)

	require.NotNil(t, resp.TopClient)
	assert.Equal(t, "Awa Ndiaye", resp.TopClient.FullName)

	require.Len(t, resp.ByMonth, 2)
	assert.Equal(t, models.MonthStat{Month: "2025-06", Count: 4, Nights: 12}, resp.ByMonth[0])
	assert.Equal(t, models.MonthStat{Month: "2025-07", Count: 2, Nights: 6}, resp.ByMonth[1])
}

func TestSummary_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeStatsRepo{}, &fakeRoomRepo{}, fixedTimeProvider{}, nopLogger{})

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "malformed start date", start: "01/06/2025", end: "2025-06-30"},
		{name: "malformed end date", start: "2025-06-01", end: "yesterday"},
		{name: "end before start", start: "2025-06-30", end: "2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Summary(context.Background(), &models.StatisticsRequest{
				StartDate: tt.start,
				EndDate:   tt.end,
			})
			assert.ErrorIs(t, err, ErrInvalidPeriod)
		})
	}
}

func TestSummary_NoRooms(t *testing.T) {
	svc := NewService(&fakeStatsRepo{nights: 10}, &fakeRoomRepo{}, fixedTimeProvider{}, nopLogger{})

	resp, err := svc.Summary(context.Background(), &models.StatisticsRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-30",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.OccupancyRate)
	assert.Nil(t, resp.LeastReservedRoom)
}

func TestCurrentOccupancy(t *testing.T) {
	rooms := &fakeRoomRepo{
		rooms: []*domain.Room{
			{ID: 1, Status: domain.RoomStatusOccupied},
			{ID: 2, Status: domain.RoomStatusOccupied},
			{ID: 3, Status: domain.RoomStatusFree},
			{ID: 4, Status: domain.RoomStatusMaintenance},
		},
	}
	svc := NewService(&fakeStatsRepo{}, rooms, fixedTimeProvider{}, nopLogger{})

	resp, err := svc.CurrentOccupancy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalRooms)
	assert.Equal(t, 2, resp.OccupiedRooms)
	assert.InDelta(t, 50.0, resp.OccupancyRate, 0.001)
}

func TestCurrentOccupancy_NoRooms(t *testing.T) {
	svc := NewService(&fakeStatsRepo{}, &fakeRoomRepo{}, fixedTimeProvider{}, nopLogger{})

	resp, err := svc.CurrentOccupancy(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.TotalRooms)
	assert.Equal(t, 0.0, resp.OccupancyRate)
}

func TestRevenueToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)
	svc := NewService(&fakeStatsRepo{revenue: 125000}, &fakeRoomRepo{}, fixedTimeProvider{now: now}, nopLogger{})

	resp, err := svc.RevenueToday(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-06-10", resp.StartDate)
	assert.Equal(t, "2025-06-10", resp.EndDate)
	assert.Equal(t, 125000.0, resp.Revenue)
}
