package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	bookingModels "github.com/sunriver-hotel/frontdesk-service/internal/service/bookings/models"
	updateBooking "github.com/sunriver-hotel/frontdesk-service/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange   = "check-in date must be before check-out date"
	msgBookingNotFound    = "booking not found"
	msgRoomNotFound       = "room not found"
	msgRoomConflict       = "room already booked for overlapping dates"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(groupID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PUT /bookings/{id} - Room not found: %v", err)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrRoomConflict):
			h.logger.Warn("PUT /bookings/{id} - Room conflict: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgRoomConflict)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking %s: %v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated: id=%s", groupID)
	handlers.RespondJSON(w, http.StatusOK, bookingModels.FromDomainBooking(result.Booking))
}
