package set_cleaning_status

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/cleaning/models"
)

type CleaningService interface {
	SetStatus(ctx context.Context, roomNumber string, status string) (*models.CleaningStatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
