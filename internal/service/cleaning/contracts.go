package cleaning

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// CleaningRepository интерфейс репозитория статусов уборки
type CleaningRepository interface {
	List(ctx context.Context) ([]*domain.CleaningStatus, error)
	SetStatus(ctx context.Context, roomNumber string, state domain.CleaningState) (*domain.CleaningStatus, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
