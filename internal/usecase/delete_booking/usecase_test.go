package delete_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type passthroughTxManager struct{}

func (passthroughTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeBookingRepo struct {
	guestByGroup  map[string]int64
	remainingRows map[int64]int
	deletedGroups []string
}

func (f *fakeBookingRepo) GroupGuestID(_ context.Context, groupID string) (int64, error) {
	guestID, ok := f.guestByGroup[groupID]
	if !ok {
		return 0, bookingRepo.ErrBookingNotFound
	}
	return guestID, nil
}

func (f *fakeBookingRepo) DeleteGroup(_ context.Context, groupID string) error {
	if _, ok := f.guestByGroup[groupID]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.deletedGroups = append(f.deletedGroups, groupID)
	return nil
}

func (f *fakeBookingRepo) CountByGuest(_ context.Context, guestID int64) (int, error) {
	return f.remainingRows[guestID], nil
}

type fakeGuestRepo struct {
	deleted []int64
}

func (f *fakeGuestRepo) Delete(_ context.Context, guestID int64) error {
	f.deleted = append(f.deleted, guestID)
	return nil
}

func TestDeleteBooking_CascadesToOrphanedGuest(t *testing.T) {
	booking := &fakeBookingRepo{
		guestByGroup:  map[string]int64{"g1": 7},
		remainingRows: map[int64]int{7: 0},
	}
	guests := &fakeGuestRepo{}
	uc := NewUseCase(booking, guests, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroupID: "g1"})
	require.NoError(t, err)

	assert.True(t, resp.GuestDeleted)
	assert.Equal(t, []string{"g1"}, booking.deletedGroups)
	assert.Equal(t, []int64{7}, guests.deleted)
}

func TestDeleteBooking_KeepsGuestWithOtherBookings(t *testing.T) {
	booking := &fakeBookingRepo{
		guestByGroup:  map[string]int64{"g1": 7},
		remainingRows: map[int64]int{7: 2},
	}
	guests := &fakeGuestRepo{}
	uc := NewUseCase(booking, guests, passthroughTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{GroupID: "g1"})
	require.NoError(t, err)

	assert.False(t, resp.GuestDeleted)
	assert.Empty(t, guests.deleted)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	booking := &fakeBookingRepo{guestByGroup: map[string]int64{}}
	uc := NewUseCase(booking, &fakeGuestRepo{}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{GroupID: "missing"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDeleteBooking_EmptyID(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeGuestRepo{}, passthroughTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{GroupID: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
