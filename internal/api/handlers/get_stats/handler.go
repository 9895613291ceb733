package get_stats

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings"
)

const msgInvalidYear = "invalid year"

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

// Handle GET /api/v1/stats?year=2026
// Без параметра year статистика строится за текущий год
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	year := time.Now().Year()
	if yearStr := r.URL.Query().Get("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			h.logger.Warn("GET /stats - Invalid year %q: %v", yearStr, err)
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		year = parsed
	}

	result, err := h.service.Stats(r.Context(), year)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidYear)
			return
		}
		h.logger.Error("GET /stats - Failed to aggregate stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
