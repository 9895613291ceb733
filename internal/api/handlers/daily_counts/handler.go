package daily_counts

import (
	"errors"
	"net/http"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings/models"
)

const (
	msgMissingDates = "query parameters from and to are required"
	msgInvalidDate  = "invalid date format, expected YYYY-MM-DD"
	msgInvalidRange = "from must be before to"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/daily-counts?from=2026-08-01&to=2026-09-01
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fromStr := query.Get("from")
	toStr := query.Get("to")
	if fromStr == "" || toStr == "" {
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		h.logger.Warn("GET /bookings/daily-counts - Invalid from %q: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		h.logger.Warn("GET /bookings/daily-counts - Invalid to %q: %v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.DailyCounts(r.Context(), &models.DailyCountsRequest{From: from, To: to})
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /bookings/daily-counts - Failed to count: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
