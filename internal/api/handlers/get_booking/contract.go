package get_booking

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetByID(ctx context.Context, groupID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
