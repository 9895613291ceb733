package create_booking

import (
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	createBooking "github.com/sunriver-hotel/frontdesk-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName  string   `json:"guestName"`
	Phone      string   `json:"phone"`
	Email      *string  `json:"email,omitempty"`
	Address    *string  `json:"address,omitempty"`
	TaxID      *string  `json:"taxId,omitempty"`
	CheckIn    string   `json:"checkIn"`  // "2026-08-10"
	CheckOut   string   `json:"checkOut"` // "2026-08-12"
	Rooms      []string `json:"rooms"`
	Status     string   `json:"status"`
	Deposit    *float64 `json:"deposit,omitempty"`
	TotalPrice *float64 `json:"totalPrice,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		GuestName:  r.GuestName,
		Phone:      r.Phone,
		Email:      r.Email,
		Address:    r.Address,
		TaxID:      r.TaxID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Rooms:      r.Rooms,
		Status:     domain.BookingStatus(r.Status),
		Deposit:    r.Deposit,
		TotalPrice: r.TotalPrice,
	}, nil
}
