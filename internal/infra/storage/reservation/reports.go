package reservation

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/pkg/dbmetrics"
	"github.com/ouleymatou/HMS-ReservationService/pkg/psqlbuilder"
)

// Агрегатные запросы для отчетов.
// Период везде задается полуинтервалом [start, end) по дате прибытия.
// Отмененные бронирования в выручку и загрузку не попадают

// SumRevenueBetween возвращает суммарную выручку за период
func (r *Repository) SumRevenueBetween(ctx context.Context, start, end time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(total_price), 0)").
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumRevenueBetween - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: SumRevenueBetween - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

// SumNightsBetween возвращает количество проданных ночей за период
func (r *Repository) SumNightsBetween(ctx context.Context, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(nights), 0)").
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumNightsBetween - build select query: %v", ErrBuildQuery, err)
	}

	var nights int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&nights); err != nil {
		return 0, fmt.Errorf("%w: SumNightsBetween - scan sum: %v", ErrScanRow, err)
	}

	return nights, nil
}

// AvgNightsBetween возвращает среднюю длительность проживания за период
func (r *Repository) AvgNightsBetween(ctx context.Context, start, end time.Time) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(AVG(nights), 0)").
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: AvgNightsBetween - build select query: %v", ErrBuildQuery, err)
	}

	var avg float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("%w: AvgNightsBetween - scan avg: %v", ErrScanRow, err)
	}

	return avg, nil
}

// CountBetween возвращает общее количество бронирований за период
func (r *Repository) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	return r.countWindow(ctx, "CountBetween", nil, start, end)
}

// CountCancelledBetween возвращает количество отмен за период
func (r *Repository) CountCancelledBetween(ctx context.Context, start, end time.Time) (int, error) {
	status := domain.StatusCancelled
	return r.countWindow(ctx, "CountCancelledBetween", &status, start, end)
}

func (r *Repository) countWindow(ctx context.Context, op string, status *domain.ReservationStatus, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end})

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*status)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, op, err)
	}

	return count, nil
}

// CountByMonthBetween возвращает количество бронирований по месяцам
func (r *Repository) CountByMonthBetween(ctx context.Context, start, end time.Time) ([]*domain.MonthCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("to_char(arrival, 'YYYY-MM') AS month", "COUNT(*)").
		From("reservations").
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByMonthBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByMonthBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.MonthCount, 0)
	for rows.Next() {
		var row domain.MonthCount
		if err := rows.Scan(&row.Month, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByMonthBetween - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByMonthBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// SumNightsByMonthBetween возвращает количество проданных ночей по месяцам
func (r *Repository) SumNightsByMonthBetween(ctx context.Context, start, end time.Time) ([]*domain.MonthNights, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("to_char(arrival, 'YYYY-MM') AS month", "COALESCE(SUM(nights), 0)").
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		GroupBy("month").
		OrderBy("month ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SumNightsByMonthBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SumNightsByMonthBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.MonthNights, 0)
	for rows.Next() {
		var row domain.MonthNights
		if err := rows.Scan(&row.Month, &row.Nights); err != nil {
			return nil, fmt.Errorf("%w: SumNightsByMonthBetween - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SumNightsByMonthBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountByRoomBetween возвращает количество бронирований по комнатам,
// отсортированное по убыванию. Комнаты без бронирований не включаются
func (r *Repository) CountByRoomBetween(ctx context.Context, start, end time.Time) ([]*domain.RoomCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("room_id", "room_number", "COUNT(*)").
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		GroupBy("room_id", "room_number").
		OrderBy("COUNT(*) DESC, room_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByRoomBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByRoomBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.RoomCount, 0)
	for rows.Next() {
		var row domain.RoomCount
		if err := rows.Scan(&row.RoomID, &row.RoomNumber, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByRoomBetween - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByRoomBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountByTypeBetween возвращает количество бронирований по типам комнат,
// отсортированное по убыванию
func (r *Repository) CountByTypeBetween(ctx context.Context, start, end time.Time) ([]*domain.TypeCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(t.label, '') AS type_label", "COUNT(*)").
		From("reservations b").
		LeftJoin("rooms r ON r.id = b.room_id").
		LeftJoin("room_types t ON t.id = r.room_type_id").
		Where(squirrel.NotEq{"b.status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"b.arrival": start}).
		Where(squirrel.Lt{"b.arrival": end}).
		GroupBy("type_label").
		OrderBy("COUNT(*) DESC, type_label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByTypeBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByTypeBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.TypeCount, 0)
	for rows.Next() {
		var row domain.TypeCount
		if err := rows.Scan(&row.TypeLabel, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByTypeBetween - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByTypeBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountByClientBetween возвращает количество бронирований по клиентам,
// отсортированное по убыванию
func (r *Repository) CountByClientBetween(ctx context.Context, start, end time.Time) ([]*domain.ClientCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"TRIM(client_first_name || ' ' || client_last_name) AS full_name",
		"COUNT(*)",
	).
		From("reservations").
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.GtOrEq{"arrival": start}).
		Where(squirrel.Lt{"arrival": end}).
		GroupBy("full_name").
		OrderBy("COUNT(*) DESC, full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CountByClientBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByClientBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ClientCount, 0)
	for rows.Next() {
		var row domain.ClientCount
		if err := rows.Scan(&row.FullName, &row.Count); err != nil {
			return nil, fmt.Errorf("%w: CountByClientBetween - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByClientBetween - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
