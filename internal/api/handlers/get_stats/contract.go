package get_stats

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings/models"
)

type BookingsService interface {
	Stats(ctx context.Context, year int) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
