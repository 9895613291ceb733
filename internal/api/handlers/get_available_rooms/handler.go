package get_available_rooms

import (
	"errors"
	"net/http"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	getAvailableRooms "github.com/sunriver-hotel/frontdesk-service/internal/usecase/get_available_rooms"
)

const (
	msgMissingDates     = "query parameters check_in and check_out are required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange = "check_in must be before check_out"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available?check_in=2026-08-10&check_out=2026-08-12
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	checkInStr := query.Get("check_in")
	checkOutStr := query.Get("check_out")
	if checkInStr == "" || checkOutStr == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid check_in %q: %v", checkInStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /rooms/available - Invalid check_out %q: %v", checkOutStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &getAvailableRooms.Request{
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
	if exclude := query.Get("exclude_booking_id"); exclude != "" {
		req.ExcludeGroupID = &exclude
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableRooms.ErrInvalidDateRange) {
			handlers.RespondBadRequest(w, msgInvalidDateRange)
			return
		}
		h.logger.Error("GET /rooms/available - Failed to find rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
