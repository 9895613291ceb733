package get_available_rooms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func catalog() []*domain.Room {
	return []*domain.Room{
		{ID: 1, Number: "101", View: domain.ViewRiver, BedType: domain.BedDouble},
		{ID: 2, Number: "102", View: domain.ViewRiver, BedType: domain.BedTwin},
		{ID: 3, Number: "201", View: domain.ViewStandard, BedType: domain.BedDouble},
	}
}

func TestFindAvailableRooms_NoBookings(t *testing.T) {
	rooms, err := FindAvailableRooms(catalog(), nil, date(2026, 8, 10), date(2026, 8, 12), "")
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func TestFindAvailableRooms_OverlappingBookingBlocksRoom(t *testing.T) {
	bookings := []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}, CheckIn: date(2026, 8, 9), CheckOut: date(2026, 8, 11)},
	}

	rooms, err := FindAvailableRooms(catalog(), bookings, date(2026, 8, 10), date(2026, 8, 12), "")
	require.NoError(t, err)

	numbers := roomNumbers(rooms)
	assert.Equal(t, []string{"102", "201"}, numbers)
}

func TestFindAvailableRooms_AdjacentBookingDoesNotBlock(t *testing.T) {
	// Выезд 10-го, запрошенный заезд 10-го: комната свободна
	bookings := []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}, CheckIn: date(2026, 8, 8), CheckOut: date(2026, 8, 10)},
		{GroupID: "g2", Rooms: []string{"102"}, CheckIn: date(2026, 8, 12), CheckOut: date(2026, 8, 14)},
	}

	rooms, err := FindAvailableRooms(catalog(), bookings, date(2026, 8, 10), date(2026, 8, 12), "")
	require.NoError(t, err)
	assert.Len(t, rooms, 3)
}

func TestFindAvailableRooms_ExcludesOwnGroupOnEdit(t *testing.T) {
	bookings := []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}, CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12)},
		{GroupID: "g2", Rooms: []string{"102"}, CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12)},
	}

	// При редактировании g1 его собственные комнаты считаются свободными
	rooms, err := FindAvailableRooms(catalog(), bookings, date(2026, 8, 10), date(2026, 8, 12), "g1")
	require.NoError(t, err)

	numbers := roomNumbers(rooms)
	assert.Contains(t, numbers, "101")
	assert.NotContains(t, numbers, "102")
}

func TestFindAvailableRooms_MultiRoomGroupBlocksAllItsRooms(t *testing.T) {
	bookings := []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101", "201"}, CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12)},
	}

	rooms, err := FindAvailableRooms(catalog(), bookings, date(2026, 8, 11), date(2026, 8, 13), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"102"}, roomNumbers(rooms))
}

func TestFindAvailableRooms_InvalidRange(t *testing.T) {
	_, err := FindAvailableRooms(catalog(), nil, date(2026, 8, 12), date(2026, 8, 10), "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = FindAvailableRooms(catalog(), nil, date(2026, 8, 10), date(2026, 8, 10), "")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func roomNumbers(rooms []*domain.Room) []string {
	numbers := make([]string, 0, len(rooms))
	for _, r := range rooms {
		numbers = append(numbers, r.Number)
	}
	return numbers
}
