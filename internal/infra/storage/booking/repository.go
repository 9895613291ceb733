package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	"github.com/sunriver-hotel/frontdesk-service/pkg/dbmetrics"
	"github.com/sunriver-hotel/frontdesk-service/pkg/psqlbuilder"
)

// Бронирование хранится построчно: одна строка на пару (группа, комната).
// Строки одной группы собираются в доменную модель domain.Booking,
// общая стоимость = сумма price_per_night × nights по всем комнатам группы.
var selectColumns = []string{
	"b.booking_group_id",
	"g.guest_id",
	"g.guest_name",
	"g.phone",
	"g.email",
	"g.address",
	"g.tax_id",
	"r.room_number",
	"b.check_in_date",
	"b.check_out_date",
	"b.status",
	"b.deposit",
	"b.price_per_night",
	"b.created_at",
	"b.updated_at",
}

// Repository репозиторий для работы с группами бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// RoomAssignment пара (id комнаты, номер) для вставки строк группы
type RoomAssignment struct {
	RoomID     int64
	RoomNumber string
}

// CreateGroup вставляет строки группы бронирования: по одной на комнату.
// Вызывается внутри транзакции вместе с проверкой доступности и созданием гостя.
func (r *Repository) CreateGroup(
	ctx context.Context,
	groupID string,
	guestID int64,
	rooms []RoomAssignment,
	checkIn, checkOut time.Time,
	status domain.BookingStatus,
	deposit *float64,
	pricePerNight float64,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("bookings").
		Columns(
			"booking_group_id",
			"guest_id",
			"room_id",
			"check_in_date",
			"check_out_date",
			"status",
			"deposit",
			"price_per_night",
		)

	for _, room := range rooms {
		insertBuilder = insertBuilder.Values(
			groupID,
			guestID,
			room.RoomID,
			checkIn,
			checkOut,
			status,
			deposit,
			pricePerNight,
		)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateGroup - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateGroup - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// ListGroups получает все группы бронирований, отсортированные по дате
// создания (сначала новые)
func (r *Repository) ListGroups(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		OrderBy("b.created_at DESC, b.booking_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListGroups - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGroups - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGroups(rows)
}

// ListGroupsOverlapping получает группы, чей диапазон дат пересекает
// полуоткрытый диапазон [start, end).
//
// Внутри транзакции добавляет FOR UPDATE: создание/обновление бронирования
// блокирует пересекающиеся строки, чтобы параллельная запись не прошла между
// проверкой доступности и вставкой.
func (r *Repository) ListGroupsOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect().
		Where(squirrel.Lt{"b.check_in_date": end}).
		Where(squirrel.Gt{"b.check_out_date": start}).
		OrderBy("b.created_at DESC, b.booking_id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF b")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGroupsOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGroupsOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanGroups(rows)
}

// GetGroup получает одну группу бронирования по идентификатору
func (r *Repository) GetGroup(ctx context.Context, groupID string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"b.booking_group_id": groupID}).
		OrderBy("b.booking_id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetGroup - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetGroup - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groups, err := r.scanGroups(rows)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, ErrBookingNotFound
	}

	return groups[0], nil
}

// GroupGuestID возвращает id гостя, на которого оформлена группа
func (r *Repository) GroupGuestID(ctx context.Context, groupID string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("guest_id").
		From("bookings").
		Where(squirrel.Eq{"booking_group_id": groupID}).
		Limit(1).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GroupGuestID - build select query: %v", ErrBuildQuery, err)
	}

	var guestID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&guestID)
	if err == sql.ErrNoRows {
		return 0, ErrBookingNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GroupGuestID - scan guest_id: %v", ErrScanRow, err)
	}

	return guestID, nil
}

// DeleteGroup удаляет все строки группы бронирования
func (r *Repository) DeleteGroup(ctx context.Context, groupID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"booking_group_id": groupID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteGroup - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteGroup - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteGroup - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// CountByGuest возвращает количество строк бронирований гостя.
// Используется каскадной политикой удаления: гость удаляется, только когда
// на него не ссылается ни одно бронирование.
func (r *Repository) CountByGuest(ctx context.Context, guestID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"guest_id": guestID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByGuest - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByGuest - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(selectColumns...).
		From("bookings b").
		Join("guests g ON g.guest_id = b.guest_id").
		Join("rooms r ON r.room_id = b.room_id")
}

// scanGroups собирает построчные результаты в группы бронирований.
// Порядок групп соответствует порядку первых встреченных строк.
func (r *Repository) scanGroups(rows *sql.Rows) ([]*domain.Booking, error) {
	groups := make([]*domain.Booking, 0)
	byID := make(map[string]*domain.Booking)

	for rows.Next() {
		var (
			groupID       string
			guestID       int64
			guestName     string
			phone         string
			email         *string
			address       *string
			taxID         *string
			roomNumber    string
			checkIn       time.Time
			checkOut      time.Time
			status        domain.BookingStatus
			deposit       *float64
			pricePerNight float64
			createdAt     sql.NullTime
			updatedAt     sql.NullTime
		)

		err := rows.Scan(
			&groupID,
			&guestID,
			&guestName,
			&phone,
			&email,
			&address,
			&taxID,
			&roomNumber,
			&checkIn,
			&checkOut,
			&status,
			&deposit,
			&pricePerNight,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanGroups - scan row: %v", ErrScanRow, err)
		}

		group, ok := byID[groupID]
		if !ok {
			group = &domain.Booking{
				GroupID:   groupID,
				GuestName: guestName,
				Phone:     phone,
				Email:     email,
				Address:   address,
				TaxID:     taxID,
				CheckIn:   checkIn,
				CheckOut:  checkOut,
				Status:    status,
				Deposit:   deposit,
				CreatedAt: createdAt.Time,
				UpdatedAt: updatedAt.Time,
				Rooms:     make([]string, 0, 1),
			}
			byID[groupID] = group
			groups = append(groups, group)
		}

		group.Rooms = append(group.Rooms, roomNumber)
		group.TotalPrice += pricePerNight * float64(domain.Nights(checkIn, checkOut))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanGroups - rows error: %v", ErrScanRow, err)
	}

	for _, group := range groups {
		domain.SortRoomNumbers(group.Rooms)
	}

	return groups, nil
}
