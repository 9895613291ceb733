package models

import (
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// Request модели

// DailyCountsRequest запрос на подневную статистику занятости
type DailyCountsRequest struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"` // не включительно
}

// Response модели

// BookingResponse ответ с данными группы бронирования
type BookingResponse struct {
	ID         string   `json:"id"`
	GuestName  string   `json:"guestName"`
	Phone      string   `json:"phone"`
	Email      *string  `json:"email,omitempty"`
	Address    *string  `json:"address,omitempty"`
	TaxID      *string  `json:"taxId,omitempty"`
	CheckIn    string   `json:"checkIn"`  // "2026-08-10"
	CheckOut   string   `json:"checkOut"` // "2026-08-12"
	Nights     int      `json:"nights"`
	Rooms      []string `json:"rooms"`
	Status     string   `json:"status"`
	Deposit    *float64 `json:"deposit,omitempty"`
	TotalPrice float64  `json:"totalPrice"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

// BookingListResponse ответ со списком групп бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// DailyCount занятость комнат на один день
type DailyCount struct {
	Date          string `json:"date"` // "2026-08-10"
	OccupiedRooms int    `json:"occupiedRooms"`
}

// DailyCountsResponse ответ с подневной занятостью комнат
type DailyCountsResponse struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Counts []*DailyCount `json:"counts"`
}

// MonthOccupancy занятость за один календарный месяц
type MonthOccupancy struct {
	Month          string  `json:"month"` // "2026-08"
	OccupiedNights int     `json:"occupiedNights"`
	OccupancyRate  float64 `json:"occupancyRate"` // доля от room-nights месяца, 0..1
}

// RoomPopularity частота бронирования комнаты
type RoomPopularity struct {
	RoomNumber string `json:"roomNumber"`
	Bookings   int    `json:"bookings"`
	Nights     int    `json:"nights"`
}

// StatsResponse ответ с агрегированной статистикой за год
type StatsResponse struct {
	Year           int               `json:"year"`
	TotalBookings  int               `json:"totalBookings"`
	TotalRevenue   float64           `json:"totalRevenue"`
	MonthOccupancy []*MonthOccupancy `json:"monthOccupancy"`
	PopularRooms   []*RoomPopularity `json:"popularRooms"`
}

// Converters

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:         b.GroupID,
		GuestName:  b.GuestName,
		Phone:      b.Phone,
		Email:      b.Email,
		Address:    b.Address,
		TaxID:      b.TaxID,
		CheckIn:    b.CheckIn.Format(domain.DateFormat),
		CheckOut:   b.CheckOut.Format(domain.DateFormat),
		Nights:     b.Nights(),
		Rooms:      b.Rooms,
		Status:     string(b.Status),
		Deposit:    b.Deposit,
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	responses := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, FromDomainBooking(b))
	}
	return &BookingListResponse{
		Bookings: responses,
		Total:    len(responses),
	}
}
