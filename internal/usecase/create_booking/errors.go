package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidDateRange = errors.New("create_booking: check-in date must be before check-out date")

	// ErrRoomNotFound возвращается, когда запрошенная комната отсутствует в каталоге
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrRoomConflict возвращается, когда комната уже занята в пересекающемся диапазоне
	ErrRoomConflict = errors.New("create_booking: room already booked for overlapping dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
