package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда дата заезда не раньше даты выезда
	ErrInvalidDateRange = errors.New("update_booking: check-in date must be before check-out date")

	// ErrBookingNotFound возвращается, когда группа бронирования не существует
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrRoomNotFound возвращается, когда запрошенная комната отсутствует в каталоге
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrRoomConflict возвращается, когда комната уже занята другой группой
	ErrRoomConflict = errors.New("update_booking: room already booked for overlapping dates")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
