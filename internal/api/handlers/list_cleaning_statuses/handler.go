package list_cleaning_statuses

import (
	"net/http"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
)

type Handler struct {
	service CleaningService
	logger  Logger
}

func NewHandler(service CleaningService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cleaning
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /cleaning - Failed to list statuses: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
