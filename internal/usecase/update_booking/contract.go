package update_booking

import (
	"context"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
	guestRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/guest"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetGroup(ctx context.Context, groupID string) (*domain.Booking, error)
	GroupGuestID(ctx context.Context, groupID string) (int64, error)
	DeleteGroup(ctx context.Context, groupID string) error
	ListGroupsOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	CreateGroup(
		ctx context.Context,
		groupID string,
		guestID int64,
		rooms []bookingRepo.RoomAssignment,
		checkIn, checkOut time.Time,
		status domain.BookingStatus,
		deposit *float64,
		pricePerNight float64,
	) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByNumbers(ctx context.Context, numbers []string) ([]*domain.Room, error)
}

// GuestRepository интерфейс репозитория гостей
type GuestRepository interface {
	Update(ctx context.Context, g *guestRepo.Guest) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
