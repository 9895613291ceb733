package get_available_rooms

import (
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// Request модель запроса доступных комнат на диапазон дат
type Request struct {
	CheckIn  time.Time // дата заезда (включительно)
	CheckOut time.Time // дата выезда (не включительно)

	// ExcludeGroupID группа, которую нужно игнорировать при проверке занятости.
	// Используется при редактировании бронирования, чтобы оно не блокировало
	// собственные комнаты.
	ExcludeGroupID *string
}

// Response модель ответа со свободными комнатами
type Response struct {
	CheckIn  time.Time
	CheckOut time.Time
	Rooms    []*domain.Room
}
