package set_cleaning_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sunriver-hotel/frontdesk-service/internal/api/handlers"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/cleaning"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidStatus      = "invalid cleaning status, expected \"Clean\" or \"Needs Cleaning\""
	msgRoomNotFound       = "room not found"
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

// Handle PUT /api/v1/cleaning/{roomNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomNumber := mux.Vars(r)["roomNumber"]

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /cleaning/{roomNumber} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetStatus(r.Context(), roomNumber, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, cleaning.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, cleaning.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("PUT /cleaning/{roomNumber} - Failed to set status for room %s: %v", roomNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
