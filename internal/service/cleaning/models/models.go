package models

import "github.com/sunriver-hotel/frontdesk-service/internal/domain"

// CleaningStatusResponse статус уборки одной комнаты
type CleaningStatusResponse struct {
	RoomNumber string `json:"roomNumber"`
	Status     string `json:"status"` // "Clean" или "Needs Cleaning"
}

// CleaningListResponse статусы уборки всех комнат
type CleaningListResponse struct {
	Statuses []*CleaningStatusResponse `json:"statuses"`
	Total    int                       `json:"total"`
}

// FromDomainStatus конвертирует domain модель в response
func FromDomainStatus(cs *domain.CleaningStatus) *CleaningStatusResponse {
	return &CleaningStatusResponse{
		RoomNumber: cs.RoomNumber,
		Status:     string(cs.Status),
	}
}

// FromDomainStatusList конвертирует список domain моделей в response
func FromDomainStatusList(statuses []*domain.CleaningStatus) *CleaningListResponse {
	responses := make([]*CleaningStatusResponse, 0, len(statuses))
	for _, cs := range statuses {
		responses = append(responses, FromDomainStatus(cs))
	}
	return &CleaningListResponse{
		Statuses: responses,
		Total:    len(responses),
	}
}
