package models

import "github.com/sunriver-hotel/frontdesk-service/internal/domain"

// RoomResponse ответ с данными комнаты каталога
type RoomResponse struct {
	ID       int64  `json:"id"`
	Number   string `json:"number"`
	Floor    int    `json:"floor"`
	View     string `json:"view"`
	BedType  string `json:"bedType"`
	TypeName string `json:"typeName"` // например "River view - Double bed"
}

// RoomListResponse ответ со списком комнат каталога
type RoomListResponse struct {
	Rooms []*RoomResponse `json:"rooms"`
	Total int             `json:"total"`
}

// OccupantResponse краткие сведения о госте, занимающем комнату
type OccupantResponse struct {
	BookingID string `json:"bookingId"`
	GuestName string `json:"guestName"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Status    string `json:"status"`
}

// RoomOccupancyResponse состояние одной комнаты на выбранный день
type RoomOccupancyResponse struct {
	Number         string            `json:"number"`
	Floor          int               `json:"floor"`
	TypeName       string            `json:"typeName"`
	States         []string          `json:"states"` // vacant | check_in | check_out | in_house
	CleaningStatus string            `json:"cleaningStatus"`
	Occupant       *OccupantResponse `json:"occupant,omitempty"`
}

// OccupancyBoardResponse шахматка занятости на выбранный день
type OccupancyBoardResponse struct {
	Date  string                   `json:"date"`
	Rooms []*RoomOccupancyResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в response
func FromDomainRoom(r *domain.Room) *RoomResponse {
	return &RoomResponse{
		ID:       r.ID,
		Number:   r.Number,
		Floor:    r.Floor,
		View:     string(r.View),
		BedType:  string(r.BedType),
		TypeName: r.TypeName(),
	}
}

// FromDomainRoomList конвертирует список domain моделей в response
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	responses := make([]*RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		responses = append(responses, FromDomainRoom(r))
	}
	return &RoomListResponse{
		Rooms: responses,
		Total: len(responses),
	}
}
