package rooms

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomRepo struct {
	rooms []*domain.Room
}

func (f *fakeRoomRepo) List(context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) ListGroupsOverlapping(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	overlapping := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.OverlapsRange(start, end) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

type fakeCleaningRepo struct {
	statuses []*domain.CleaningStatus
}

func (f *fakeCleaningRepo) List(context.Context) ([]*domain.CleaningStatus, error) {
	return f.statuses, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newRoomsService(bookings []*domain.Booking) *Service {
	roomRepo := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Number: "101", Floor: 1, View: domain.ViewRiver, BedType: domain.BedDouble},
		{ID: 2, Number: "102", Floor: 1, View: domain.ViewRiver, BedType: domain.BedTwin},
	}}
	cleaningRepo := &fakeCleaningRepo{statuses: []*domain.CleaningStatus{
		{RoomNumber: "101", Status: domain.CleaningNeeds},
		{RoomNumber: "102", Status: domain.CleaningClean},
	}}
	return NewService(roomRepo, &fakeBookingRepo{bookings: bookings}, cleaningRepo, nopLogger{})
}

func TestOccupancy_VacantBoard(t *testing.T) {
	svc := newRoomsService(nil)

	resp, err := svc.Occupancy(context.Background(), date(2026, 8, 10))
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	assert.Equal(t, "2026-08-10", resp.Date)
	assert.Equal(t, []string{"vacant"}, resp.Rooms[0].States)
	assert.Nil(t, resp.Rooms[0].Occupant)
	assert.Equal(t, "Needs Cleaning", resp.Rooms[0].CleaningStatus)
	assert.Equal(t, "Clean", resp.Rooms[1].CleaningStatus)
}

func TestOccupancy_InHouseWithOccupant(t *testing.T) {
	svc := newRoomsService([]*domain.Booking{
		{
			GroupID:   "g1",
			GuestName: "Ananya Siri",
			Rooms:     []string{"101"},
			CheckIn:   date(2026, 8, 9),
			CheckOut:  date(2026, 8, 12),
			Status:    domain.StatusDeposit,
		},
	})

	resp, err := svc.Occupancy(context.Background(), date(2026, 8, 10))
	require.NoError(t, err)

	room101 := resp.Rooms[0]
	assert.Equal(t, []string{"in_house"}, room101.States)
	require.NotNil(t, room101.Occupant)
	assert.Equal(t, "g1", room101.Occupant.BookingID)
	assert.Equal(t, "Ananya Siri", room101.Occupant.GuestName)
}

func TestOccupancy_CheckOutDayVisibleOnBoard(t *testing.T) {
	// Бронирование заканчивается в выбранный день: попадает на шахматку
	// как выезд, хотя диапазон [date, date+1) оно уже не пересекает
	svc := newRoomsService([]*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}, CheckIn: date(2026, 8, 8), CheckOut: date(2026, 8, 10)},
	})

	resp, err := svc.Occupancy(context.Background(), date(2026, 8, 10))
	require.NoError(t, err)

	assert.Equal(t, []string{"check_out"}, resp.Rooms[0].States)
	// день выезда: гость уже не занимает комнату
	assert.Nil(t, resp.Rooms[0].Occupant)
}
