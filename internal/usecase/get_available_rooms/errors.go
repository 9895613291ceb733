package get_available_rooms

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidDateRange = errors.New("get_available_rooms: check-in date must be before check-out date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_rooms: internal error")
)
