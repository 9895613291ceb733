package list_cleaning_statuses

import (
	"context"

	"github.com/sunriver-hotel/frontdesk-service/internal/service/cleaning/models"
)

type CleaningService interface {
	List(ctx context.Context) (*models.CleaningListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
