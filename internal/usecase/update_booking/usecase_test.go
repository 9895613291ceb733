package update_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	"github.com/sunriver-hotel/frontdesk-service/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func currentBooking() *domain.Booking {
	return &domain.Booking{
		GroupID:    "g1",
		CheckIn:    date(2026, 8, 10),
		CheckOut:   date(2026, 8, 13),
		Rooms:      []string{"101", "102"},
		TotalPrice: 5000,
	}
}

func TestResolveTotalPrice_ExplicitOverrideWins(t *testing.T) {
	req := &Request{
		CheckIn:    date(2026, 8, 10),
		CheckOut:   date(2026, 8, 13),
		Rooms:      []string{"101", "102"},
		TotalPrice: ptr.Ptr(7777.0),
	}

	total := resolveTotalPrice(req, currentBooking(), 3, 800)
	assert.Equal(t, 7777.0, total)
}

func TestResolveTotalPrice_StatusOnlyEditKeepsTotal(t *testing.T) {
	// Те же даты и комнаты, стоимость не передана: прежняя сумма
	// (в том числе ручная) сохраняется
	req := &Request{
		CheckIn:  date(2026, 8, 10),
		CheckOut: date(2026, 8, 13),
		Rooms:    []string{"102", "101"}, // порядок не важен
		Status:   domain.StatusPaid,
	}

	total := resolveTotalPrice(req, currentBooking(), 3, 800)
	assert.Equal(t, 5000.0, total)
}

func TestResolveTotalPrice_DateChangeRecomputes(t *testing.T) {
	req := &Request{
		CheckIn:  date(2026, 8, 10),
		CheckOut: date(2026, 8, 14),
		Rooms:    []string{"101", "102"},
	}

	// 4 ночи × 2 комнаты × 800
	total := resolveTotalPrice(req, currentBooking(), 4, 800)
	assert.Equal(t, 6400.0, total)
}

func TestResolveTotalPrice_RoomChangeRecomputes(t *testing.T) {
	req := &Request{
		CheckIn:  date(2026, 8, 10),
		CheckOut: date(2026, 8, 13),
		Rooms:    []string{"101"},
	}

	// 3 ночи × 1 комната × 800
	total := resolveTotalPrice(req, currentBooking(), 3, 800)
	assert.Equal(t, 2400.0, total)
}

func TestSameRoomSet(t *testing.T) {
	assert.True(t, sameRoomSet([]string{"101", "102"}, []string{"102", "101"}))
	assert.False(t, sameRoomSet([]string{"101"}, []string{"101", "102"}))
	assert.False(t, sameRoomSet([]string{"101", "103"}, []string{"101", "102"}))
	assert.True(t, sameRoomSet(nil, nil))
}

func TestConflictingRooms_ExcludesOwnGroup(t *testing.T) {
	bookings := []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}},
		{GroupID: "g2", Rooms: []string{"102"}},
	}

	conflicts := conflictingRooms([]string{"101", "102", "103"}, bookings, "g1")
	assert.Equal(t, []string{"102"}, conflicts)
}
