package run_cleaning_reset

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
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

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
	alreadyMarked map[string]bool
	calls         [][]string
}

func (f *fakeCleaningRepo) MarkNeedsCleaning(_ context.Context, roomNumbers []string) (int64, error) {
	f.calls = append(f.calls, roomNumbers)

	var marked int64
	for _, n := range roomNumbers {
		if !f.alreadyMarked[n] {
			f.alreadyMarked[n] = true
			marked++
		}
	}
	return marked, nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newResetUseCase(booking *fakeBookingRepo, cleaning *fakeCleaningRepo, today time.Time) *UseCase {
	uc := NewUseCase(booking, cleaning, nopLogger{})
	uc.SetTimeProvider(fixedTime{now: today})
	return uc
}

func TestCleaningReset_MarksOccupiedRooms(t *testing.T) {
	booking := &fakeBookingRepo{bookings: []*domain.Booking{
		{Rooms: []string{"102", "101"}, CheckIn: date(2026, 8, 9), CheckOut: date(2026, 8, 12)},
		// выезд сегодня: комната уже не занята
		{Rooms: []string{"103"}, CheckIn: date(2026, 8, 8), CheckOut: date(2026, 8, 10)},
		// заезд в будущем
		{Rooms: []string{"201"}, CheckIn: date(2026, 8, 15), CheckOut: date(2026, 8, 17)},
	}}
	cleaning := &fakeCleaningRepo{alreadyMarked: map[string]bool{}}
	uc := newResetUseCase(booking, cleaning, date(2026, 8, 10))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"101", "102"}, resp.OccupiedRooms)
	assert.Equal(t, int64(2), resp.MarkedCount)
}

func TestCleaningReset_SecondRunIsIdempotent(t *testing.T) {
	booking := &fakeBookingRepo{bookings: []*domain.Booking{
		{Rooms: []string{"101"}, CheckIn: date(2026, 8, 9), CheckOut: date(2026, 8, 12)},
	}}
	cleaning := &fakeCleaningRepo{alreadyMarked: map[string]bool{}}
	uc := newResetUseCase(booking, cleaning, date(2026, 8, 10))

	first, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.MarkedCount)

	second, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.MarkedCount)
}

func TestCleaningReset_NoOccupiedRooms(t *testing.T) {
	booking := &fakeBookingRepo{}
	cleaning := &fakeCleaningRepo{alreadyMarked: map[string]bool{}}
	uc := newResetUseCase(booking, cleaning, date(2026, 8, 10))

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Empty(t, resp.OccupiedRooms)
	assert.Equal(t, int64(0), resp.MarkedCount)
	// репозиторий не дергается впустую
	assert.Empty(t, cleaning.calls)
}
