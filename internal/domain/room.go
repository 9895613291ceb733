package domain

import (
	"sort"
	"strconv"
)

// RoomView represents the view category of a room
type RoomView string

const (
	ViewRiver    RoomView = "River view"
	ViewStandard RoomView = "Standard view"
	ViewCottage  RoomView = "Cottage"
)

// BedType represents the bed configuration of a room
type BedType string

const (
	BedDouble BedType = "Double bed"
	BedTwin   BedType = "Twin bed"
)

// Room represents a hotel room. Reference data: created at provisioning
// time and never mutated by booking operations.
type Room struct {
	ID      int64
	Number  string // номер комнаты, числовая строка ("101")
	Floor   int
	View    RoomView
	BedType BedType
}

// TypeName returns the display name used for receipt line grouping
func (r *Room) TypeName() string {
	return string(r.View) + " - " + string(r.BedType)
}

// SortRoomNumbers sorts room numbers numerically in place.
// Room numbers are numeric strings, so a lexicographic sort would put
// "10" before "2".
func SortRoomNumbers(numbers []string) {
	sort.Slice(numbers, func(i, j int) bool {
		return roomNumberValue(numbers[i]) < roomNumberValue(numbers[j])
	})
}

// SortRoomsByNumber sorts rooms by numeric room number in place
func SortRoomsByNumber(rooms []*Room) {
	sort.Slice(rooms, func(i, j int) bool {
		return roomNumberValue(rooms[i].Number) < roomNumberValue(rooms[j].Number)
	})
}

func roomNumberValue(number string) int {
	// Нечисловые номера уходят в конец списка
	n, err := strconv.Atoi(number)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return n
}
