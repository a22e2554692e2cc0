package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/ouleymatou/HMS-ReservationService/internal/domain"
	"github.com/ouleymatou/HMS-ReservationService/pkg/dbmetrics"
	"github.com/ouleymatou/HMS-ReservationService/pkg/psqlbuilder"
)

// uniqueViolationCode код ошибки PostgreSQL при нарушении уникальности
const uniqueViolationCode = "23505"

// roomColumns колонки комнаты вместе с производными полями типа.
// Тип подключается через LEFT JOIN, чтобы комнаты с удаленным типом
// оставались видимыми с нулевыми тарифом и вместимостью
var roomColumns = []string{
	"r.id",
	"r.number",
	"r.room_type_id",
	"r.floor",
	"r.status",
	"r.air_conditioning",
	"r.balcony",
	"r.ocean_view",
	"r.last_renovated",
	"COALESCE(t.code, '')",
	"COALESCE(t.label, '')",
	"COALESCE(t.capacity, 0)",
	"COALESCE(t.nightly_rate, 0)",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с комнатами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"number",
			"room_type_id",
			"floor",
			"status",
			"air_conditioning",
			"balcony",
			"ocean_view",
			"last_renovated",
		).
		Values(
			room.Number,
			room.RoomTypeID,
			room.Floor,
			room.Status,
			room.AirConditioning,
			room.Balcony,
			room.OceanView,
			room.LastRenovated,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, room.Number)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return room, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"r.id": id}, "GetByID")
}

// GetByNumber получает комнату по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"r.number": number}, "GetByNumber")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		LeftJoin("room_types t ON t.id = r.room_type_id").
		Where(where)

	// Внутри транзакции блокируем строку комнаты, чтобы конкурирующие
	// бронирования не меняли ее статус одновременно
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
	}

	return room, nil
}

// List получает комнаты с опциональной фильтрацией по типу и статусу,
// отсортированные по номеру
func (r *Repository) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms r").
		LeftJoin("room_types t ON t.id = r.room_type_id").
		OrderBy("r.number ASC")

	if filter.TypeLabel != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"t.label": *filter.TypeLabel})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.status": *filter.Status})
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

	return scanRooms(rows)
}

// ListNumbersByTypeAndFloor получает номера всех комнат указанного типа
// на указанном этаже. Используется при генерации следующего номера комнаты
func (r *Repository) ListNumbersByTypeAndFloor(ctx context.Context, roomTypeID int64, floor int) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("number").
		From("rooms").
		Where(squirrel.Eq{"room_type_id": roomTypeID, "floor": floor}).
		OrderBy("number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListNumbersByTypeAndFloor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNumbersByTypeAndFloor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	numbers := make([]string, 0)
	for rows.Next() {
		var number string
		if err := rows.Scan(&number); err != nil {
			return nil, fmt.Errorf("%w: ListNumbersByTypeAndFloor - scan number: %v", ErrScanRow, err)
		}
		numbers = append(numbers, number)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNumbersByTypeAndFloor - rows error: %v", ErrScanRow, err)
	}

	return numbers, nil
}

// CountByType возвращает количество комнат, привязанных к типу
func (r *Repository) CountByType(ctx context.Context, roomTypeID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		Where(squirrel.Eq{"room_type_id": roomTypeID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByType - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByType - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Count возвращает общее количество комнат
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("rooms").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// Update обновляет атрибуты комнаты
func (r *Repository) Update(ctx context.Context, room *domain.Room) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("number", room.Number).
		Set("room_type_id", room.RoomTypeID).
		Set("floor", room.Floor).
		Set("status", room.Status).
		Set("air_conditioning", room.AirConditioning).
		Set("balcony", room.Balcony).
		Set("ocean_view", room.OceanView).
		Set("last_renovated", room.LastRenovated).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateNumber, room.Number)
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// UpdateStatus обновляет статус комнаты
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
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
		return ErrRoomNotFound
	}

	return nil
}

// Delete удаляет комнату (физическое удаление)
// Сервисный слой обязан убедиться, что у комнаты нет будущих бронирований
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var lastRenovated sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Number,
		&room.RoomTypeID,
		&room.Floor,
		&room.Status,
		&room.AirConditioning,
		&room.Balcony,
		&room.OceanView,
		&lastRenovated,
		&room.TypeCode,
		&room.TypeLabel,
		&room.Capacity,
		&room.NightlyRate,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if lastRenovated.Valid {
		room.LastRenovated = &lastRenovated.Time
	}
	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}

// scanRooms сканирует результаты запроса в слайс комнат
func scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
