package bookings

import (
	"context"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListGroups(ctx context.Context) ([]*domain.Booking, error)
	GetGroup(ctx context.Context, groupID string) (*domain.Booking, error)
	ListGroupsOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
