package generate_receipt

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_receipt: invalid input data")

	// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
	ErrInvalidPaymentMethod = errors.New("generate_receipt: invalid payment method")

	// ErrBookingNotFound возвращается, когда группа бронирования не существует
	ErrBookingNotFound = errors.New("generate_receipt: booking not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_receipt: internal error")
)
