package run_cleaning_reset

import (
	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	runCleaningReset "github.com/sunriver-hotel/frontdesk-service/internal/usecase/run_cleaning_reset"
)

// ResetResponse HTTP response model
type ResetResponse struct {
	Date          string   `json:"date"`
	OccupiedRooms []string `json:"occupiedRooms"`
	MarkedCount   int64    `json:"markedCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *runCleaningReset.Response) *ResetResponse {
	occupied := resp.OccupiedRooms
	if occupied == nil {
		occupied = []string{}
	}
	return &ResetResponse{
		Date:          resp.Date.Format(domain.DateFormat),
		OccupiedRooms: occupied,
		MarkedCount:   resp.MarkedCount,
	}
}
