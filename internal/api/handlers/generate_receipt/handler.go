package generate_receipt

import (
	"errors"
	"net/http"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	generateReceipt "github.com/sunriver-hotel/frontdesk-service/internal/usecase/generate_receipt"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidPaymentMethod = "invalid payment method, expected \"Cash\" or \"Transfer\""
	msgBookingNotFound      = "booking not found"
)

type Handler struct {
	useCase GenerateReceiptUseCase
	logger  Logger
}

func NewHandler(useCase GenerateReceiptUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateReceiptRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/receipt - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/receipt - Invalid request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, generateReceipt.ErrInvalidPaymentMethod):
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, generateReceipt.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, generateReceipt.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("POST /bookings/receipt - Failed to build receipt: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
