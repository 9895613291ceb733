package list_rooms

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/rooms/models"
)

type RoomsService interface {
	List(ctx context.Context) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
