package update_booking

import (
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// Request модель запроса на полное обновление группы бронирования.
// Группа перезаписывается целиком: состав комнат, даты и данные гостя
// берутся из запроса, а не сливаются с текущим состоянием.
type Request struct {
	GroupID   string
	GuestName string
	Phone     string
	Email     *string
	Address   *string
	TaxID     *string
	CheckIn   time.Time
	CheckOut  time.Time
	Rooms     []string
	Status    domain.BookingStatus
	Deposit   *float64

	// TotalPrice новая итоговая стоимость. Если nil, прежняя стоимость
	// сохраняется, пока состав комнат и даты не изменились; при их
	// изменении стоимость пересчитывается по базовому тарифу.
	TotalPrice *float64
}

// Response модель ответа с обновленной группой бронирования
type Response struct {
	Booking *domain.Booking
}
