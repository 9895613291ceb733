package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRoomDay_Vacant(t *testing.T) {
	states := ClassifyRoomDay("101", date(2026, 8, 10), nil)
	assert.Equal(t, []OccupancyState{OccupancyVacant}, states)
}

func TestClassifyRoomDay_InHouse(t *testing.T) {
	bookings := []*Booking{
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 9), CheckOut: date(2026, 8, 12)},
	}
	states := ClassifyRoomDay("101", date(2026, 8, 10), bookings)
	assert.Equal(t, []OccupancyState{OccupancyInHouse}, states)
}

func TestClassifyRoomDay_CheckInDay(t *testing.T) {
	bookings := []*Booking{
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12)},
	}
	states := ClassifyRoomDay("101", date(2026, 8, 10), bookings)
	assert.ElementsMatch(t, []OccupancyState{OccupancyCheckIn, OccupancyInHouse}, states)
}

func TestClassifyRoomDay_CheckOutDay(t *testing.T) {
	bookings := []*Booking{
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 8), CheckOut: date(2026, 8, 10)},
	}
	states := ClassifyRoomDay("101", date(2026, 8, 10), bookings)
	assert.Equal(t, []OccupancyState{OccupancyCheckOut}, states)
}

func TestClassifyRoomDay_OneNightStay(t *testing.T) {
	// Однодневное проживание в день заезда: и заезд, и проживание
	bookings := []*Booking{
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 11)},
	}
	states := ClassifyRoomDay("101", date(2026, 8, 10), bookings)
	assert.ElementsMatch(t, []OccupancyState{OccupancyCheckIn, OccupancyInHouse}, states)
}

func TestClassifyRoomDay_BackToBackTurnover(t *testing.T) {
	// Один гость выезжает, другой заезжает в тот же день
	bookings := []*Booking{
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 8), CheckOut: date(2026, 8, 10)},
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12)},
	}
	states := ClassifyRoomDay("101", date(2026, 8, 10), bookings)
	assert.ElementsMatch(t, []OccupancyState{OccupancyCheckOut, OccupancyCheckIn, OccupancyInHouse}, states)
}

func TestClassifyRoomDay_OtherRoomIgnored(t *testing.T) {
	bookings := []*Booking{
		{Rooms: []string{"102"}, CheckIn: date(2026, 8, 9), CheckOut: date(2026, 8, 12)},
	}
	states := ClassifyRoomDay("101", date(2026, 8, 10), bookings)
	assert.Equal(t, []OccupancyState{OccupancyVacant}, states)
}

func TestRoomOccupiedOn(t *testing.T) {
	occupant := &Booking{
		GroupID: "g1",
		Rooms:   []string{"101"},
		CheckIn: date(2026, 8, 9), CheckOut: date(2026, 8, 12),
	}
	bookings := []*Booking{occupant}

	assert.Equal(t, occupant, RoomOccupiedOn("101", date(2026, 8, 10), bookings))
	assert.Nil(t, RoomOccupiedOn("101", date(2026, 8, 12), bookings))
	assert.Nil(t, RoomOccupiedOn("102", date(2026, 8, 10), bookings))
}
