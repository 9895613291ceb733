package create_booking

import (
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// Request модель запроса на создание группы бронирования
type Request struct {
	GuestName string
	Phone     string
	Email     *string
	Address   *string
	TaxID     *string
	CheckIn   time.Time // дата заезда (включительно)
	CheckOut  time.Time // дата выезда (не включительно)
	Rooms     []string  // номера комнат, минимум одна
	Status    domain.BookingStatus
	Deposit   *float64 // сумма депозита при Status == Deposit

	// TotalPrice итоговая стоимость, введенная оператором.
	// Если nil, стоимость считается автоматически:
	// nights × rooms × default_nightly_rate.
	TotalPrice *float64
}

// Response модель ответа с созданной группой бронирования
type Response struct {
	Booking *domain.Booking
}
