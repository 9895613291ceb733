package room_occupancy

import (
	"context"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/rooms/models"
)

type RoomsService interface {
	Occupancy(ctx context.Context, date time.Time) (*models.OccupancyBoardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
