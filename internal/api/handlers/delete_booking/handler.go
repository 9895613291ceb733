package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	deleteBooking "github.com/sunriver-hotel/frontdesk-service/internal/usecase/delete_booking"
)

const msgBookingNotFound = "booking not found"

type Handler struct {
	useCase DeleteBookingUseCase
	logger  Logger
}

func NewHandler(useCase DeleteBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["id"]

	_, err := h.useCase.Execute(r.Context(), &deleteBooking.Request{GroupID: groupID})
	if err != nil {
		switch {
		case errors.Is(err, deleteBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, deleteBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking %s: %v", groupID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted: id=%s", groupID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
