package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	"github.com/sunriver-hotel/frontdesk-service/pkg/dbmetrics"
	"github.com/sunriver-hotel/frontdesk-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с комнатами (справочные данные)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает все комнаты отеля.
// Сортировка по room_id — стабильный внутренний порядок заведения комнат,
// номер комнаты строковый и лексикографически не сортируется.
func (r *Repository) List(ctx context.Context) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_id",
		"room_number",
		"floor",
		"room_type",
		"bed_type",
	).
		From("rooms").
		OrderBy("room_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetByNumbers получает комнаты по списку номеров
func (r *Repository) GetByNumbers(ctx context.Context, numbers []string) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_id",
		"room_number",
		"floor",
		"room_type",
		"bed_type",
	).
		From("rooms").
		Where(squirrel.Eq{"room_number": numbers}).
		OrderBy("room_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumbers - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumbers - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetByNumber получает одну комнату по номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_id",
		"room_number",
		"floor",
		"room_type",
		"bed_type",
	).
		From("rooms").
		Where(squirrel.Eq{"room_number": number}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Number,
		&room.Floor,
		&room.View,
		&room.BedType,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс комнат
func (r *Repository) scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		var room domain.Room
		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.Floor,
			&room.View,
			&room.BedType,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
