package roomtype

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

// Repository репозиторий для работы с типами комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип комнаты
func (r *Repository) Create(ctx context.Context, roomType *domain.RoomType) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("room_types").
		Columns(
			"code",
			"label",
			"description",
			"capacity",
			"nightly_rate",
		).
		Values(
			roomType.Code,
			roomType.Label,
			roomType.Description,
			roomType.Capacity,
			roomType.NightlyRate,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&roomType.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCode, roomType.Code)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	roomType.CreatedAt = createdAt.Time
	roomType.UpdatedAt = updatedAt.Time

	return roomType, nil
}

// GetByID получает тип комнаты по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByCode получает тип комнаты по коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.RoomType, error) {
	return r.getOne(ctx, squirrel.Eq{"code": code}, "GetByCode")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"label",
		"description",
		"capacity",
		"nightly_rate",
		"created_at",
		"updated_at",
	).
		From("room_types").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var roomType domain.RoomType
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&roomType.ID,
		&roomType.Code,
		&roomType.Label,
		&roomType.Description,
		&roomType.Capacity,
		&roomType.NightlyRate,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room type: %v", ErrScanRow, op, err)
	}

	roomType.CreatedAt = createdAt.Time
	roomType.UpdatedAt = updatedAt.Time

	return &roomType, nil
}

// List получает все типы комнат, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"code",
		"label",
		"description",
		"capacity",
		"nightly_rate",
		"created_at",
		"updated_at",
	).
		From("room_types").
		OrderBy("label ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	roomTypes := make([]*domain.RoomType, 0)
	for rows.Next() {
		var roomType domain.RoomType
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&roomType.ID,
			&roomType.Code,
			&roomType.Label,
			&roomType.Description,
			&roomType.Capacity,
			&roomType.NightlyRate,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		roomType.CreatedAt = createdAt.Time
		roomType.UpdatedAt = updatedAt.Time

		roomTypes = append(roomTypes, &roomType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return roomTypes, nil
}

// Update обновляет тип комнаты
func (r *Repository) Update(ctx context.Context, roomType *domain.RoomType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("room_types").
		Set("code", roomType.Code).
		Set("label", roomType.Label).
		Set("description", roomType.Description).
		Set("capacity", roomType.Capacity).
		Set("nightly_rate", roomType.NightlyRate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomType.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateCode, roomType.Code)
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomTypeNotFound
	}

	return nil
}

// Delete удаляет тип комнаты
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_types").
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
		return ErrRoomTypeNotFound
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolationCode
	}
	return false
}
