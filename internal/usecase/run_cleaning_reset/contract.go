package run_cleaning_reset

import (
	"context"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListGroupsOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
}

// CleaningRepository интерфейс репозитория статусов уборки
type CleaningRepository interface {
	MarkNeedsCleaning(ctx context.Context, roomNumbers []string) (int64, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
