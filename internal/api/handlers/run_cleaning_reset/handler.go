package run_cleaning_reset

import (
	"net/http"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
)

type Handler struct {
	useCase RunCleaningResetUseCase
	logger  Logger
}

func NewHandler(useCase RunCleaningResetUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/cleaning/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /cleaning/reset - Failed to run reset: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
