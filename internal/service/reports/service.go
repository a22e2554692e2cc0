package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/internal/service/reports/models"
)

// Service сервис отчетов и статистики
type Service struct {
	statsRepo    StatsRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	statsRepo StatsRepository,
	roomRepo RoomRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		statsRepo:    statsRepo,
		roomRepo:     roomRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Summary строит сводную статистику за период.
// Конец периода включительно: запросы к хранилищу работают
// с полуинтервалом [start, end+1d)
func (s *Service) Summary(ctx context.Context, req *models.StatisticsRequest) (*models.StatisticsResponse, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		s.logger.Warn("Summary: invalid period start=%s end=%s: %v", req.StartDate, req.EndDate, err)
		return nil, err
	}

	s.logger.Info("Summary: building statistics for period %s to %s", req.StartDate, req.EndDate)

	revenue, err := s.statsRepo.SumRevenueBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "revenue", err)
	}

	nights, err := s.statsRepo.SumNightsBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "nights", err)
	}

	count, err := s.statsRepo.CountBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "count", err)
	}

	cancellations, err := s.statsRepo.CountCancelledBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "cancellations", err)
	}

	averageStay, err := s.statsRepo.AvgNightsBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "average stay", err)
	}

	totalRooms, err := s.roomRepo.Count(ctx)
	if err != nil {
		return nil, s.repoError("Summary", "room count", err)
	}

	byRoom, err := s.statsRepo.CountByRoomBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "by room", err)
	}

	byType, err := s.statsRepo.CountByTypeBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "by type", err)
	}

	byClient, err := s.statsRepo.CountByClientBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "by client", err)
	}

	byMonth, err := s.statsRepo.CountByMonthBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "by month", err)
	}

	nightsByMonth, err := s.statsRepo.SumNightsByMonthBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("Summary", "nights by month", err)
	}

	leastReserved, err := s.leastReservedRoom(ctx, byRoom)
	if err != nil {
		return nil, err
	}

	resp := &models.StatisticsResponse{
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Revenue:           revenue,
		NightsSold:        nights,
		ReservationCount:  count,
		Cancellations:     cancellations,
		AverageStay:       averageStay,
		OccupancyRate:     occupancyRate(nights, totalRooms, start, end),
		LeastReservedRoom: leastReserved,
		ByMonth:           mergeMonthStats(byMonth, nightsByMonth),
	}

	if len(byRoom) > 0 {
		resp.MostReservedRoom = models.FromDomainRoomCount(byRoom[0])
	}
	if len(byType) > 0 {
		resp.MostRequestedType = models.FromDomainTypeCount(byType[0])
	}
	if len(byClient) > 0 {
		resp.TopClient = models.FromDomainClientCount(byClient[0])
	}

	return resp, nil
}

// RevenueToday возвращает выручку по броням с прибытием сегодня
func (s *Service) RevenueToday(ctx context.Context) (*models.RevenueResponse, error) {
	today := s.timeProvider.Now()
	day := today.Format(domain.DateFormat)

	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	end := start.AddDate(0, 0, 1)

	revenue, err := s.statsRepo.SumRevenueBetween(ctx, start, end)
	if err != nil {
		return nil, s.repoError("RevenueToday", "revenue", err)
	}

	return &models.RevenueResponse{
		StartDate: day,
		EndDate:   day,
		Revenue:   revenue,
	}, nil
}

// CurrentOccupancy возвращает текущую загрузку отеля
// по фактически занятым комнатам
func (s *Service) CurrentOccupancy(ctx context.Context) (*models.OccupancyResponse, error) {
	totalRooms, err := s.roomRepo.Count(ctx)
	if err != nil {
		return nil, s.repoError("CurrentOccupancy", "room count", err)
	}

	occupied := domain.RoomStatusOccupied
	occupiedRooms, err := s.roomRepo.List(ctx, domain.RoomFilter{Status: &occupied})
	if err != nil {
		return nil, s.repoError("CurrentOccupancy", "occupied rooms", err)
	}

	resp := &models.OccupancyResponse{
		TotalRooms:    totalRooms,
		OccupiedRooms: len(occupiedRooms),
	}
	if totalRooms > 0 {
		resp.OccupancyRate = float64(resp.OccupiedRooms) / float64(totalRooms) * 100
	}

	return resp, nil
}

// leastReservedRoom находит наименее бронируемую комнату.
// Комнаты без единой брони за период тоже участвуют, поэтому
// агрегат дополняется полным списком комнат
func (s *Service) leastReservedRoom(ctx context.Context, byRoom []*domain.RoomCount) (*models.RoomStat, error) {
	rooms, err := s.roomRepo.List(ctx, domain.RoomFilter{})
	if err != nil {
		return nil, s.repoError("leastReservedRoom", "rooms", err)
	}
	if len(rooms) == 0 {
		return nil, nil
	}

	counts := make(map[string]int, len(byRoom))
	for _, c := range byRoom {
		counts[c.RoomNumber] = c.Count
	}

	var least *models.RoomStat
	for _, room := range rooms {
		count := counts[room.Number]
		if least == nil || count < least.Count {
			least = &models.RoomStat{RoomNumber: room.Number, Count: count}
		}
	}

	return least, nil
}

func (s *Service) repoError(op, part string, err error) error {
	s.logger.Error("%s: repository error (%s): %v", op, part, err)
	return fmt.Errorf("%w: %s - %s: %v", ErrInternal, op, part, err)
}

// occupancyRate считает загрузку как долю проданных ночей
// от общего номерного фонда за период
func occupancyRate(nights, totalRooms int, start, end time.Time) float64 {
	days := int(end.Sub(start).Hours() / 24)
	if totalRooms <= 0 || days <= 0 {
		return 0
	}
	return float64(nights) / float64(totalRooms*days) * 100
}

func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid start date %q", ErrInvalidPeriod, startDate)
	}
	end, err := time.Parse(domain.DateFormat, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid end date %q", ErrInvalidPeriod, endDate)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end date before start date", ErrInvalidPeriod)
	}
	// Конец периода включительно
	return start, end.AddDate(0, 0, 1), nil
}

func mergeMonthStats(counts []*domain.MonthCount, nights []*domain.MonthNights) []models.MonthStat {
	nightsByMonth := make(map[string]int, len(nights))
	for _, n := range nights {
		nightsByMonth[n.Month] = n.Nights
	}

	result := make([]models.MonthStat, 0, len(counts))
	for _, c := range counts {
		result = append(result, models.MonthStat{
			Month:  c.Month,
			Count:  c.Count,
			Nights: nightsByMonth[c.Month],
		})
	}
	return result
}
