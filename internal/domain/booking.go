package domain

import "time"

// BookingStatus represents the payment status of a booking group
type BookingStatus string

const (
	StatusUnpaid  BookingStatus = "Unpaid"
	StatusDeposit BookingStatus = "Deposit"
	StatusPaid    BookingStatus = "Paid"
)

// ValidBookingStatuses список допустимых статусов оплаты
var ValidBookingStatuses = []BookingStatus{
	StatusUnpaid,
	StatusDeposit,
	StatusPaid,
}

// IsValidBookingStatus reports whether s is a known payment status
func IsValidBookingStatus(s BookingStatus) bool {
	for _, valid := range ValidBookingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// Booking represents one reservation group: one guest, one date range and
// one or more rooms, identified by a single group id.
//
// CheckIn is inclusive, CheckOut is exclusive: a booking that checks out on
// day D frees its rooms for a booking checking in on day D (same-day room
// turnover).
type Booking struct {
	GroupID    string // UUID группы бронирования
	GuestName  string
	Phone      string
	Email      *string
	Address    *string
	TaxID      *string
	CheckIn    time.Time
	CheckOut   time.Time
	Rooms      []string // номера комнат, отсортированы численно
	Status     BookingStatus
	Deposit    *float64 // имеет смысл только при Status == StatusDeposit
	TotalPrice float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Nights returns the length of the stay in nights (day-ceil, minimum 1)
func (b *Booking) Nights() int {
	return Nights(b.CheckIn, b.CheckOut)
}

// HasRoom reports whether the booking occupies the given room number
func (b *Booking) HasRoom(roomNumber string) bool {
	for _, r := range b.Rooms {
		if r == roomNumber {
			return true
		}
	}
	return false
}

// OverlapsRange reports whether the booking's date range intersects the
// half-open range [start, end) at day granularity
func (b *Booking) OverlapsRange(start, end time.Time) bool {
	return RangesOverlap(b.CheckIn, b.CheckOut, start, end)
}

// ContainsDay reports whether date falls inside [CheckIn, CheckOut)
// at day granularity
func (b *Booking) ContainsDay(date time.Time) bool {
	day := TruncateToDay(date)
	return !day.Before(TruncateToDay(b.CheckIn)) && day.Before(TruncateToDay(b.CheckOut))
}
