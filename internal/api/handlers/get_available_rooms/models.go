package get_available_rooms

import (
	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	roomModels "github.com/sunriver-hotel/frontdesk-service/internal/service/rooms/models"
	getAvailableRooms "github.com/sunriver-hotel/frontdesk-service/internal/usecase/get_available_rooms"
)

// AvailableRoomsResponse HTTP response model
type AvailableRoomsResponse struct {
	CheckIn  string                     `json:"checkIn"`
	CheckOut string                     `json:"checkOut"`
	Rooms    []*roomModels.RoomResponse `json:"rooms"`
	Total    int                        `json:"total"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableRooms.Response) *AvailableRoomsResponse {
	rooms := make([]*roomModels.RoomResponse, 0, len(resp.Rooms))
	for _, room := range resp.Rooms {
		rooms = append(rooms, roomModels.FromDomainRoom(room))
	}
	return &AvailableRoomsResponse{
		CheckIn:  resp.CheckIn.Format(domain.DateFormat),
		CheckOut: resp.CheckOut.Format(domain.DateFormat),
		Rooms:    rooms,
		Total:    len(rooms),
	}
}
