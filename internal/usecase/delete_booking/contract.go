package delete_booking

import "context"

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GroupGuestID(ctx context.Context, groupID string) (int64, error)
	DeleteGroup(ctx context.Context, groupID string) error
	CountByGuest(ctx context.Context, guestID int64) (int, error)
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Delete(ctx context.Context, guestID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
