package rooms

import (
	"context"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListGroupsOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// CleaningRepository интерфейс репозитория статусов уборки
type CleaningRepository interface {
	List(ctx context.Context) ([]*domain.CleaningStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
