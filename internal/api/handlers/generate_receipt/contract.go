package generate_receipt

import (
	"context"

	generateReceipt "github.com/sunriver-hotel/frontdesk-service/internal/usecase/generate_receipt"
)

type GenerateReceiptUseCase interface {
	Execute(ctx context.Context, req *generateReceipt.Request) (*generateReceipt.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
