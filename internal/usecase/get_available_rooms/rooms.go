package get_available_rooms

import (
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// FindAvailableRooms возвращает комнаты, свободные на весь полуоткрытый
// диапазон [checkIn, checkOut). Чистая функция без побочных эффектов,
// безопасна для конкурентных вызовов.
//
// Комната занята, если хотя бы одна группа бронирований (кроме excludeGroupID)
// пересекает запрошенный диапазон и содержит эту комнату. Пересечение
// проверяется по полуоткрытым интервалам со строгими неравенствами:
//
// - Комната с выездом 12-го и заезд нового гостя 12-го → НЕТ конфликта (граничат)
// - Бронирование 10-го..12-го и запрос 11-го..13-го → ЕСТЬ конфликт
func FindAvailableRooms(
	allRooms []*domain.Room,
	bookings []*domain.Booking,
	checkIn, checkOut time.Time,
	excludeGroupID string,
) ([]*domain.Room, error) {
	if !domain.TruncateToDay(checkIn).Before(domain.TruncateToDay(checkOut)) {
		return nil, ErrInvalidDateRange
	}

	booked := bookedRoomNumbers(bookings, checkIn, checkOut, excludeGroupID)

	available := make([]*domain.Room, 0, len(allRooms))
	for _, room := range allRooms {
		if !booked[room.Number] {
			available = append(available, room)
		}
	}

	return available, nil
}

// bookedRoomNumbers собирает номера комнат, занятых пересекающимися
// бронированиями в диапазоне [checkIn, checkOut)
func bookedRoomNumbers(
	bookings []*domain.Booking,
	checkIn, checkOut time.Time,
	excludeGroupID string,
) map[string]bool {
	booked := make(map[string]bool)

	for _, b := range bookings {
		if excludeGroupID != "" && b.GroupID == excludeGroupID {
			continue
		}
		if !b.OverlapsRange(checkIn, checkOut) {
			continue
		}
		for _, roomNumber := range b.Rooms {
			booked[roomNumber] = true
		}
	}

	return booked
}
