package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortRoomNumbers_Numeric(t *testing.T) {
	numbers := []string{"10", "2", "101", "1", "21"}
	SortRoomNumbers(numbers)
	assert.Equal(t, []string{"1", "2", "10", "21", "101"}, numbers)
}

func TestSortRoomNumbers_NonNumericLast(t *testing.T) {
	numbers := []string{"annex", "10", "2"}
	SortRoomNumbers(numbers)
	assert.Equal(t, []string{"2", "10", "annex"}, numbers)
}

func TestSortRoomsByNumber(t *testing.T) {
	rooms := []*Room{
		{Number: "10"},
		{Number: "2"},
		{Number: "1"},
	}
	SortRoomsByNumber(rooms)
	assert.Equal(t, "1", rooms[0].Number)
	assert.Equal(t, "2", rooms[1].Number)
	assert.Equal(t, "10", rooms[2].Number)
}

func TestRoomTypeName(t *testing.T) {
	room := &Room{View: ViewRiver, BedType: BedDouble}
	assert.Equal(t, "River view - Double bed", room.TypeName())

	cottage := &Room{View: ViewCottage, BedType: BedTwin}
	assert.Equal(t, "Cottage - Twin bed", cottage.TypeName())
}
