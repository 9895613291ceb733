package delete_booking

import "errors"

var (
	// ErrInvalidInput возвращается при пустом идентификаторе группы
	ErrInvalidInput = errors.New("delete_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда группа бронирования не существует
	ErrBookingNotFound = errors.New("delete_booking: booking not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_booking: internal error")
)
