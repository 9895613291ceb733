package generate_receipt

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type fakeBookingRepo struct {
	groups map[string]*domain.Booking
}

func (f *fakeBookingRepo) GetGroup(_ context.Context, groupID string) (*domain.Booking, error) {
	b, ok := f.groups[groupID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func receiptCatalog() map[string]*domain.Room {
	return map[string]*domain.Room{
		"101": {Number: "101", View: domain.ViewRiver, BedType: domain.BedDouble},
		"102": {Number: "102", View: domain.ViewRiver, BedType: domain.BedDouble},
		"103": {Number: "103", View: domain.ViewRiver, BedType: domain.BedTwin},
		"201": {Number: "201", View: domain.ViewStandard, BedType: domain.BedDouble},
	}
}

func newReceiptUseCase(groups map[string]*domain.Booking, now time.Time) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{groups: groups},
		&fakeRoomRepo{rooms: receiptCatalog()},
		nopLogger{},
	)
	uc.SetTimeProvider(fixedTime{now: now})
	return uc
}

func TestBuildLineItems_GroupsSameRoomType(t *testing.T) {
	bookings := []*domain.Booking{{
		GroupID:    "g1",
		CheckIn:    date(2026, 8, 10),
		CheckOut:   date(2026, 8, 12),
		Rooms:      []string{"101", "102", "103"},
		TotalPrice: 4800, // 3 комнаты × 2 ночи × 800
	}}

	lines, err := BuildLineItems(bookings, receiptCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	// 101 и 102 одного типа сворачиваются в одну строку
	assert.Equal(t, "River view - Double bed", lines[0].Description)
	assert.Equal(t, 2, lines[0].RoomCount)
	assert.Equal(t, 2, lines[0].Nights)
	assert.Equal(t, 800.0, lines[0].UnitPrice)
	assert.Equal(t, 3200.0, lines[0].LineTotal)

	assert.Equal(t, "River view - Twin bed", lines[1].Description)
	assert.Equal(t, 1, lines[1].RoomCount)
	assert.Equal(t, 1600.0, lines[1].LineTotal)
}

func TestBuildLineItems_MergesAcrossBookings(t *testing.T) {
	// Две группы с одинаковым типом комнаты и датами сливаются в одну
	// строку; вклад каждой считается по цене её группы
	bookings := []*domain.Booking{
		{
			GroupID:    "g1",
			CheckIn:    date(2026, 8, 10),
			CheckOut:   date(2026, 8, 12),
			Rooms:      []string{"101"},
			TotalPrice: 1600, // 800 за ночь
		},
		{
			GroupID:    "g2",
			CheckIn:    date(2026, 8, 10),
			CheckOut:   date(2026, 8, 12),
			Rooms:      []string{"102"},
			TotalPrice: 2000, // ручной итог, 1000 за ночь
		},
	}

	lines, err := BuildLineItems(bookings, receiptCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "River view - Double bed", lines[0].Description)
	assert.Equal(t, 2, lines[0].RoomCount)
	assert.InDelta(t, 3600.0, lines[0].LineTotal, 0.01)
	// цена за ночь остается от первой группы
	assert.InDelta(t, 800.0, lines[0].UnitPrice, 0.001)
}

func TestBuildLineItems_DifferentDatesStaySeparate(t *testing.T) {
	bookings := []*domain.Booking{
		{GroupID: "g1", CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12), Rooms: []string{"101"}, TotalPrice: 1600},
		{GroupID: "g2", CheckIn: date(2026, 8, 12), CheckOut: date(2026, 8, 13), Rooms: []string{"102"}, TotalPrice: 800},
	}

	lines, err := BuildLineItems(bookings, receiptCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 2, lines[0].Nights)
	assert.Equal(t, 1, lines[1].Nights)
}

func TestBuildLineItems_SumMatchesTotals(t *testing.T) {
	bookings := []*domain.Booking{
		{
			CheckIn:    date(2026, 8, 10),
			CheckOut:   date(2026, 8, 13),
			Rooms:      []string{"101", "103", "201"},
			TotalPrice: 7200,
		},
		{
			CheckIn:    date(2026, 8, 10),
			CheckOut:   date(2026, 8, 12),
			Rooms:      []string{"102"},
			TotalPrice: 5000,
		},
	}

	lines, err := BuildLineItems(bookings, receiptCatalog())
	require.NoError(t, err)

	assert.InDelta(t, 12200.0, GrandTotal(lines), 0.01)
}

func TestBuildLineItems_UnitPriceFromOverriddenTotal(t *testing.T) {
	// Ручная итоговая стоимость: цена за ночь выводится обратно из неё
	bookings := []*domain.Booking{{
		CheckIn:    date(2026, 8, 10),
		CheckOut:   date(2026, 8, 12),
		Rooms:      []string{"101", "102"},
		TotalPrice: 5000,
	}}

	lines, err := BuildLineItems(bookings, receiptCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.InDelta(t, 1250.0, lines[0].UnitPrice, 0.001)
	assert.InDelta(t, 5000.0, lines[0].LineTotal, 0.01)
}

func TestBuildLineItems_PreservesFirstAppearanceOrder(t *testing.T) {
	bookings := []*domain.Booking{{
		CheckIn:    date(2026, 8, 10),
		CheckOut:   date(2026, 8, 11),
		Rooms:      []string{"201", "101", "102"},
		TotalPrice: 2400,
	}}

	lines, err := BuildLineItems(bookings, receiptCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Standard view - Double bed", lines[0].Description)
	assert.Equal(t, "River view - Double bed", lines[1].Description)
}

func TestBuildLineItems_UnknownRoom(t *testing.T) {
	bookings := []*domain.Booking{{
		CheckIn:    date(2026, 8, 10),
		CheckOut:   date(2026, 8, 11),
		Rooms:      []string{"999"},
		TotalPrice: 800,
	}}

	_, err := BuildLineItems(bookings, receiptCatalog())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_MultiBookingReceipt(t *testing.T) {
	groups := map[string]*domain.Booking{
		"g1": {
			GroupID:    "g1",
			GuestName:  "Ananya Siri",
			Phone:      "0812345678",
			CheckIn:    date(2026, 8, 10),
			CheckOut:   date(2026, 8, 12),
			Rooms:      []string{"101"},
			TotalPrice: 1600,
		},
		"g2": {
			GroupID:    "g2",
			GuestName:  "Ananya Siri",
			Phone:      "0812345678",
			CheckIn:    date(2026, 8, 12),
			CheckOut:   date(2026, 8, 13),
			Rooms:      []string{"101"},
			TotalPrice: 900,
		},
	}
	uc := newReceiptUseCase(groups, date(2026, 8, 13).Add(10*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		GroupIDs:      []string{"g1", "g2"},
		PaymentMethod: PaymentCash,
		PaymentDate:   date(2026, 8, 13),
	})
	require.NoError(t, err)

	receipt := resp.Receipt
	assert.Equal(t, []string{"g1", "g2"}, receipt.GroupIDs)
	assert.Equal(t, "Ananya Siri", receipt.GuestName)
	require.Len(t, receipt.Lines, 2)

	// итог квитанции равен сумме строк, а не полю одной группы
	assert.InDelta(t, 2500.0, receipt.Total, 0.01)
	assert.InDelta(t, receipt.Lines[0].LineTotal+receipt.Lines[1].LineTotal, receipt.Total, 0.001)
}

func TestExecute_PaymentDateRoundTrip(t *testing.T) {
	groups := map[string]*domain.Booking{
		"g1": {GroupID: "g1", CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12), Rooms: []string{"101"}, TotalPrice: 1600},
	}
	uc := newReceiptUseCase(groups, date(2026, 8, 20).Add(9*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		GroupIDs:      []string{"g1"},
		PaymentMethod: PaymentTransfer,
		PaymentDate:   date(2026, 8, 11),
	})
	require.NoError(t, err)
	assert.Equal(t, date(2026, 8, 11), resp.Receipt.PaymentDate)
}

func TestExecute_PaymentDateDefaultsToToday(t *testing.T) {
	groups := map[string]*domain.Booking{
		"g1": {GroupID: "g1", CheckIn: date(2026, 8, 10), CheckOut: date(2026, 8, 12), Rooms: []string{"101"}, TotalPrice: 1600},
	}
	uc := newReceiptUseCase(groups, date(2026, 8, 20).Add(9*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		GroupIDs:      []string{"g1"},
		PaymentMethod: PaymentCash,
	})
	require.NoError(t, err)
	assert.Equal(t, date(2026, 8, 20), resp.Receipt.PaymentDate)
}

func TestExecute_UnknownGroup(t *testing.T) {
	uc := newReceiptUseCase(map[string]*domain.Booking{}, date(2026, 8, 20))

	_, err := uc.Execute(context.Background(), &Request{
		GroupIDs:      []string{"missing"},
		PaymentMethod: PaymentCash,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_EmptyGroupList(t *testing.T) {
	uc := newReceiptUseCase(map[string]*domain.Booking{}, date(2026, 8, 20))

	_, err := uc.Execute(context.Background(), &Request{
		PaymentMethod: PaymentCash,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestIsValidPaymentMethod(t *testing.T) {
	assert.True(t, IsValidPaymentMethod(PaymentCash))
	assert.True(t, IsValidPaymentMethod(PaymentTransfer))
	assert.False(t, IsValidPaymentMethod("Card"))
	assert.False(t, IsValidPaymentMethod(""))
}
