package update_booking

import (
	"fmt"
	"strings"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// validateRequest проверяет входные данные запроса на обновление бронирования
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if strings.TrimSpace(req.GroupID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.GuestName) == "" {
		return fmt.Errorf("%w: guest name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if len(req.Rooms) == 0 {
		return fmt.Errorf("%w: at least one room is required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(req.Rooms))
	for _, number := range req.Rooms {
		if strings.TrimSpace(number) == "" {
			return fmt.Errorf("%w: room number must not be empty", ErrInvalidInput)
		}
		if seen[number] {
			return fmt.Errorf("%w: duplicate room number %s", ErrInvalidInput, number)
		}
		seen[number] = true
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: check-in and check-out dates are required", ErrInvalidInput)
	}
	if !domain.TruncateToDay(req.CheckIn).Before(domain.TruncateToDay(req.CheckOut)) {
		return ErrInvalidDateRange
	}

	if !domain.IsValidBookingStatus(req.Status) {
		return fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, req.Status)
	}
	if req.Deposit != nil && *req.Deposit < 0 {
		return fmt.Errorf("%w: deposit must not be negative", ErrInvalidInput)
	}
	if req.TotalPrice != nil && *req.TotalPrice < 0 {
		return fmt.Errorf("%w: total price must not be negative", ErrInvalidInput)
	}

	return nil
}
