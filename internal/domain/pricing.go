package domain

import (
	"math"
	"time"
)

// Nights returns the number of nights between check-in and check-out:
// ceiling of the range length in days, minimum 1.
func Nights(checkIn, checkOut time.Time) int {
	hours := TruncateToDay(checkOut).Sub(TruncateToDay(checkIn)).Hours()
	nights := int(math.Ceil(hours / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// TotalPrice computes the aggregate price of a stay:
// nights × roomCount × ratePerRoomPerNight.
func TotalPrice(nights, roomCount int, ratePerRoomPerNight float64) float64 {
	return float64(nights) * float64(roomCount) * ratePerRoomPerNight
}

// UnitPriceForReceipt back-derives a per-room-per-night price from a stored
// aggregate total. Used for receipt display: the stored total may have been
// manually overridden by the operator and no longer equal
// rate × nights × rooms, so the unit price must come from the total itself.
func UnitPriceForReceipt(totalPrice float64, roomCount, nights int) float64 {
	if roomCount < 1 {
		roomCount = 1
	}
	if nights < 1 {
		nights = 1
	}
	return totalPrice / float64(roomCount) / float64(nights)
}
