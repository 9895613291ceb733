package run_cleaning_reset

import (
	"context"

	runCleaningReset "github.com/sunriver-hotel/frontdesk-service/internal/usecase/run_cleaning_reset"
)

type RunCleaningResetUseCase interface {
	Execute(ctx context.Context) (*runCleaningReset.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
