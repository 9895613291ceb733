package daily_counts

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings/models"
)

type BookingsService interface {
	DailyCounts(ctx context.Context, req *models.DailyCountsRequest) (*models.DailyCountsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
