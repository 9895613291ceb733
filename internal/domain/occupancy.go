package domain

import "time"

// OccupancyState classifies a room for a specific calendar day
type OccupancyState string

const (
	OccupancyVacant   OccupancyState = "vacant"
	OccupancyCheckIn  OccupancyState = "check_in"
	OccupancyCheckOut OccupancyState = "check_out"
	OccupancyInHouse  OccupancyState = "in_house"
)

// ClassifyRoomDay projects the booking set onto one room and one calendar
// day and returns the set of occupancy states.
//
// Vacant is mutually exclusive with the other states. CheckIn, CheckOut and
// InHouse may coexist: a one-night stay evaluated on its start date yields
// both CheckIn and InHouse, and a back-to-back turnover day yields CheckOut
// from the leaving booking plus CheckIn from the arriving one.
func ClassifyRoomDay(roomNumber string, date time.Time, bookings []*Booking) []OccupancyState {
	day := TruncateToDay(date)

	seen := make(map[OccupancyState]bool)
	states := make([]OccupancyState, 0, 2)
	add := func(s OccupancyState) {
		if !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}

	for _, b := range bookings {
		if !b.HasRoom(roomNumber) {
			continue
		}
		if SameDay(b.CheckIn, day) {
			add(OccupancyCheckIn)
		}
		if SameDay(b.CheckOut, day) {
			add(OccupancyCheckOut)
		}
		if b.ContainsDay(day) {
			add(OccupancyInHouse)
		}
	}

	if len(states) == 0 {
		return []OccupancyState{OccupancyVacant}
	}
	return states
}

// RoomOccupiedOn finds the booking whose half-open date range contains the
// given day and whose room set includes the room. At most one such booking
// exists by the no-double-booking invariant; returns nil when the room is
// free on that day.
func RoomOccupiedOn(roomNumber string, date time.Time, bookings []*Booking) *Booking {
	for _, b := range bookings {
		if b.HasRoom(roomNumber) && b.ContainsDay(date) {
			return b
		}
	}
	return nil
}
