package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
	guestRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/guest"
	"github.com/sunriver-hotel/frontdesk-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeRoomRepo struct {
	rooms map[string]*domain.Room
}

func (f *fakeRoomRepo) GetByNumbers(_ context.Context, numbers []string) ([]*domain.Room, error) {
	found := make([]*domain.Room, 0, len(numbers))
	for _, n := range numbers {
		if room, ok := f.rooms[n]; ok {
			found = append(found, room)
		}
	}
	return found, nil
}

type fakeGuestRepo struct {
	nextID  int64
	created []*guestRepo.Guest
}

func (f *fakeGuestRepo) Create(_ context.Context, g *guestRepo.Guest) (int64, error) {
	f.nextID++
	f.created = append(f.created, g)
	return f.nextID, nil
}

type fakeBookingRepo struct {
	existing []*domain.Booking

	createdGroupID  string
	createdRooms    []bookingRepo.RoomAssignment
	createdPerNight float64
	createdStatus   domain.BookingStatus
	createdCheckIn  time.Time
	createdCheckOut time.Time
}

func (f *fakeBookingRepo) CreateGroup(
	_ context.Context,
	groupID string,
	_ int64,
	rooms []bookingRepo.RoomAssignment,
	checkIn, checkOut time.Time,
	status domain.BookingStatus,
	_ *float64,
	pricePerNight float64,
) error {
	f.createdGroupID = groupID
	f.createdRooms = rooms
	f.createdPerNight = pricePerNight
	f.createdStatus = status
	f.createdCheckIn = checkIn
	f.createdCheckOut = checkOut
	return nil
}

func (f *fakeBookingRepo) ListGroupsOverlapping(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	overlapping := make([]*domain.Booking, 0)
	for _, b := range f.existing {
		if b.OverlapsRange(start, end) {
			overlapping = append(overlapping, b)
		}
	}
	return overlapping, nil
}

func (f *fakeBookingRepo) GetGroup(_ context.Context, groupID string) (*domain.Booking, error) {
	if groupID != f.createdGroupID {
		return nil, bookingRepo.ErrBookingNotFound
	}

	numbers := make([]string, 0, len(f.createdRooms))
	for _, r := range f.createdRooms {
		numbers = append(numbers, r.RoomNumber)
	}
	nights := domain.Nights(f.createdCheckIn, f.createdCheckOut)

	return &domain.Booking{
		GroupID:    groupID,
		CheckIn:    f.createdCheckIn,
		CheckOut:   f.createdCheckOut,
		Rooms:      numbers,
		Status:     f.createdStatus,
		TotalPrice: f.createdPerNight * float64(len(numbers)) * float64(nights),
	}, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestUseCase(booking *fakeBookingRepo, guests *fakeGuestRepo) *UseCase {
	rooms := &fakeRoomRepo{rooms: map[string]*domain.Room{
		"101": {ID: 1, Number: "101", View: domain.ViewRiver, BedType: domain.BedDouble},
		"102": {ID: 2, Number: "102", View: domain.ViewRiver, BedType: domain.BedTwin},
	}}
	return NewUseCase(booking, rooms, guests, passthroughTxManager{}, nopLogger{}, 800)
}

func validRequest() *Request {
	return &Request{
		GuestName: "Ananya Siri",
		Phone:     "+66 81 000 1122",
		CheckIn:   date(2026, 8, 10),
		CheckOut:  date(2026, 8, 13),
		Rooms:     []string{"101", "102"},
		Status:    domain.StatusUnpaid,
	}
}

func TestCreateBooking_ComputesTotalFromDefaultRate(t *testing.T) {
	booking := &fakeBookingRepo{}
	guests := &fakeGuestRepo{}
	uc := newTestUseCase(booking, guests)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 3 ночи × 2 комнаты × 800
	assert.Equal(t, 4800.0, resp.Booking.TotalPrice)
	assert.Equal(t, 800.0, booking.createdPerNight)
	assert.Len(t, guests.created, 1)
	assert.NotEmpty(t, resp.Booking.GroupID)
}

func TestCreateBooking_CallerTotalTakenVerbatim(t *testing.T) {
	booking := &fakeBookingRepo{}
	uc := newTestUseCase(booking, &fakeGuestRepo{})

	req := validRequest()
	req.TotalPrice = ptr.Ptr(5000.0)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5000.0, resp.Booking.TotalPrice)
	// 5000 / 2 комнаты / 3 ночи
	assert.InDelta(t, 833.333, booking.createdPerNight, 0.001)
}

func TestCreateBooking_RejectsConflictingRoom(t *testing.T) {
	booking := &fakeBookingRepo{existing: []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}, CheckIn: date(2026, 8, 11), CheckOut: date(2026, 8, 14)},
	}}
	uc := newTestUseCase(booking, &fakeGuestRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Empty(t, booking.createdGroupID)
}

func TestCreateBooking_AdjacentBookingIsNotConflict(t *testing.T) {
	booking := &fakeBookingRepo{existing: []*domain.Booking{
		{GroupID: "g1", Rooms: []string{"101"}, CheckIn: date(2026, 8, 8), CheckOut: date(2026, 8, 10)},
	}}
	uc := newTestUseCase(booking, &fakeGuestRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBooking_UnknownRoom(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeGuestRepo{})

	req := validRequest()
	req.Rooms = []string{"101", "999"}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestCreateBooking_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeGuestRepo{})

	req := validRequest()
	req.GuestName = "  "
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Rooms = nil
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Rooms = []string{"101", "101"}
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.Status = "Refunded"
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = validRequest()
	req.CheckIn, req.CheckOut = req.CheckOut, req.CheckIn
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
