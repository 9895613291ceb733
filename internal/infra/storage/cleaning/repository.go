package cleaning

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	"github.com/sunriver-hotel/frontdesk-service/pkg/dbmetrics"
	"github.com/sunriver-hotel/frontdesk-service/pkg/psqlbuilder"
)

// DBExecutor минимальный интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы со статусами уборки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория статусов уборки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List получает статусы уборки всех комнат в стабильном порядке комнат
func (r *Repository) List(ctx context.Context) ([]*domain.CleaningStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"cs.room_number",
		"cs.status",
	).
		From("cleaning_statuses cs").
		Join("rooms r ON r.room_number = cs.room_number").
		OrderBy("r.room_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	statuses := make([]*domain.CleaningStatus, 0)
	for rows.Next() {
		var status domain.CleaningStatus
		if err := rows.Scan(&status.RoomNumber, &status.Status); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		statuses = append(statuses, &status)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return statuses, nil
}

// SetStatus выставляет статус уборки комнаты
func (r *Repository) SetStatus(ctx context.Context, roomNumber string, state domain.CleaningState) (*domain.CleaningStatus, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cleaning_statuses").
		Set("status", state).
		Where(squirrel.Eq{"room_number": roomNumber}).
		Suffix("RETURNING room_number, status").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: SetStatus - build update query: %v", ErrBuildQuery, err)
	}

	var status domain.CleaningStatus
	err = executor.QueryRowContext(ctx, query, args...).Scan(&status.RoomNumber, &status.Status)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SetStatus - scan row: %v", ErrScanRow, err)
	}

	return &status, nil
}

// MarkNeedsCleaning переводит перечисленные комнаты в Needs Cleaning.
// Обновляются только комнаты, еще не помеченные: повторный вызов с тем же
// набором комнат возвращает 0 — ежедневный сброс идемпотентен.
func (r *Repository) MarkNeedsCleaning(ctx context.Context, roomNumbers []string) (int64, error) {
	if len(roomNumbers) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("cleaning_statuses").
		Set("status", domain.CleaningNeeds).
		Where(squirrel.Eq{"room_number": roomNumbers}).
		Where(squirrel.NotEq{"status": domain.CleaningNeeds}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkNeedsCleaning - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNeedsCleaning - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNeedsCleaning - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}
