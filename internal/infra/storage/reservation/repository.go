package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/pkg/dbmetrics"
	"github.com/ouleymatou/HMS-ReservationService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

var reservationColumns = []string{
	"id",
	"number",
	"room_id",
	"client_first_name",
	"client_last_name",
	"client_phone",
	"client_email",
	"arrival",
	"departure",
	"party_size",
	"room_number",
	"nightly_rate",
	"nights",
	"total_price",
	"deposit",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Создание брони с проверкой доступности комнаты должно выполняться
// в транзакции, чтобы исключить гонку между параллельными запросами
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"number",
			"room_id",
			"client_first_name",
			"client_last_name",
			"client_phone",
			"client_email",
			"arrival",
			"departure",
			"party_size",
			"room_number",
			"nightly_rate",
			"nights",
			"total_price",
			"deposit",
			"status",
		).
		Values(
			reservation.Number,
			reservation.RoomID,
			reservation.ClientFirstName,
			reservation.ClientLastName,
			reservation.ClientPhone,
			reservation.ClientEmail,
			reservation.Arrival,
			reservation.Departure,
			reservation.PartySize,
			reservation.RoomNumber,
			reservation.NightlyRate,
			reservation.Nights,
			reservation.TotalPrice,
			reservation.Deposit,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, reservation.Number)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает бронирование по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Reservation, error) {
	return r.getOne(ctx, squirrel.Eq{"number": number}, "GetByNumber")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
	}

	return reservation, nil
}

// List получает бронирования с гибкой фильтрацией,
// отсортированные по дате прибытия (сначала новые)
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("arrival DESC, id DESC")

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"arrival": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"arrival": *filter.EndDate})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetBlockingByRoom получает бронирования комнаты, удерживающие ее
// в окрестности интервала [start, end). Точная проверка пересечения
// полуинтервалов выполняется на стороне вызывающего кода.
// Внутри транзакции строки блокируются FOR UPDATE
func (r *Repository) GetBlockingByRoom(ctx context.Context, roomID int64, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": blockingStatusStrings()}).
		Where(squirrel.Gt{"departure": start}).
		Where(squirrel.Lt{"arrival": end}).
		OrderBy("arrival ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByRoom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingByRoom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// GetBlockingBetween получает удерживающие бронирования всех комнат,
// попадающие в окрестность интервала [start, end).
// Используется при поиске свободных комнат
func (r *Repository) GetBlockingBetween(ctx context.Context, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": blockingStatusStrings()}).
		Where(squirrel.Gt{"departure": start}).
		Where(squirrel.Lt{"arrival": end}).
		OrderBy("room_id ASC, arrival ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetBlockingBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CountCreatedOn возвращает количество бронирований, созданных в указанный день.
// Используется при генерации порядкового номера брони.
// Внутри транзакции сериализуемый уровень изоляции защищает счетчик от гонок
func (r *Repository) CountCreatedOn(ctx context.Context, day time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.GtOrEq{"created_at": dayStart}).
		Where(squirrel.Lt{"created_at": dayEnd}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedOn - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedOn - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountFutureActive возвращает количество неотмененных бронирований комнаты,
// которые еще не закончились. Используется при проверках перед изменением
// или удалением комнаты
func (r *Repository) CountFutureActive(ctx context.Context, roomID int64, now time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCompleted)}).
		Where(squirrel.Gt{"departure": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountFutureActive - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountFutureActive - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListArrivalsOn получает подтвержденные бронирования с прибытием
// в указанный день
func (r *Repository) ListArrivalsOn(ctx context.Context, day time.Time) ([]*domain.Reservation, error) {
	dayStart, dayEnd := dayBounds(day)
	return r.listWindow(ctx, "ListArrivalsOn", domain.StatusConfirmed, "arrival", dayStart, dayEnd)
}

// ListDeparturesOn получает заселенные бронирования с отъездом
// в указанный день
func (r *Repository) ListDeparturesOn(ctx context.Context, day time.Time) ([]*domain.Reservation, error) {
	dayStart, dayEnd := dayBounds(day)
	return r.listWindow(ctx, "ListDeparturesOn", domain.StatusInProgress, "departure", dayStart, dayEnd)
}

func (r *Repository) listWindow(ctx context.Context, op string, status domain.ReservationStatus, column string, start, end time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"status": string(status)}).
		Where(squirrel.GtOrEq{column: start}).
		Where(squirrel.Lt{column: end}).
		OrderBy(column + " ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func blockingStatusStrings() []string {
	statuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		statuses[i] = string(s)
	}
	return statuses
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return dayStart, dayStart.AddDate(0, 0, 1)
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var reservation domain.Reservation
	var cancelledAt sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&reservation.ID,
		&reservation.Number,
		&reservation.RoomID,
		&reservation.ClientFirstName,
		&reservation.ClientLastName,
		&reservation.ClientPhone,
		&reservation.ClientEmail,
		&reservation.Arrival,
		&reservation.Departure,
		&reservation.PartySize,
		&reservation.RoomNumber,
		&reservation.NightlyRate,
		&reservation.Nights,
		&reservation.TotalPrice,
		&reservation.Deposit,
		&reservation.Status,
		&reservation.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if cancelledAt.Valid {
		reservation.CancelledAt = &cancelledAt.Time
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
