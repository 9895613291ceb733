package guest

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sunriver-hotel/frontdesk-service/pkg/dbmetrics"
	"github.com/sunriver-hotel/frontdesk-service/pkg/psqlbuilder"
)

// DBExecutor минимальный интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

// Guest данные гостя в хранилище
type Guest struct {
	ID      int64
	Name    string
	Phone   string
	Email   *string
	Address *string
	TaxID   *string
}

// Repository репозиторий для работы с гостями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гостей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись гостя и возвращает присвоенный id
func (r *Repository) Create(ctx context.Context, g *Guest) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("guests").
		Columns(
			"guest_name",
			"phone",
			"email",
			"address",
			"tax_id",
		).
		Values(
			g.Name,
			g.Phone,
			g.Email,
			g.Address,
			g.TaxID,
		).
		Suffix("RETURNING guest_id").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

// Update обновляет данные гостя
func (r *Repository) Update(ctx context.Context, g *Guest) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("guests").
		Set("guest_name", g.Name).
		Set("phone", g.Phone).
		Set("email", g.Email).
		Set("address", g.Address).
		Set("tax_id", g.TaxID).
		Where(squirrel.Eq{"guest_id": g.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrGuestNotFound
	}

	return nil
}

// Delete удаляет запись гостя.
// Вызывается только из транзакции удаления бронирования, когда на гостя
// больше не ссылается ни одна группа бронирований (каскадная политика).
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("guests").
		Where(squirrel.Eq{"guest_id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
