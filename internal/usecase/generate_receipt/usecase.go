package generate_receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
)

// UseCase use case для формирования квитанции по группам бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет use case формирования квитанции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if !IsValidPaymentMethod(req.PaymentMethod) {
		uc.logger.Warn("GenerateReceipt: invalid payment method %q", req.PaymentMethod)
		return nil, fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, req.PaymentMethod)
	}

	uc.logger.Info("GenerateReceipt: groups=%s, payment=%s",
		strings.Join(req.GroupIDs, ","), req.PaymentMethod)

	bookings := make([]*domain.Booking, 0, len(req.GroupIDs))
	roomNumbers := make([]string, 0)
	seenRooms := make(map[string]bool)

	for _, groupID := range req.GroupIDs {
		booking, err := uc.bookingRepo.GetGroup(ctx, groupID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, groupID)
			}
			uc.logger.Error("GenerateReceipt: failed to load booking %s: %v", groupID, err)
			return nil, fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
		}

		bookings = append(bookings, booking)
		for _, number := range booking.Rooms {
			if !seenRooms[number] {
				seenRooms[number] = true
				roomNumbers = append(roomNumbers, number)
			}
		}
	}

	rooms, err := uc.roomRepo.GetByNumbers(ctx, roomNumbers)
	if err != nil {
		uc.logger.Error("GenerateReceipt: failed to load rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
	}
	roomsByNumber := make(map[string]*domain.Room, len(rooms))
	for _, room := range rooms {
		roomsByNumber[room.Number] = room
	}

	lines, err := BuildLineItems(bookings, roomsByNumber)
	if err != nil {
		uc.logger.Error("GenerateReceipt: failed to build line items: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	paymentDate := req.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = domain.TruncateToDay(now)
	}

	first := bookings[0]
	receipt := &Receipt{
		GroupIDs:      req.GroupIDs,
		IssuedAt:      now,
		GuestName:     first.GuestName,
		Phone:         first.Phone,
		Email:         first.Email,
		Address:       first.Address,
		TaxID:         first.TaxID,
		PaymentMethod: req.PaymentMethod,
		PaymentDate:   paymentDate,
		Lines:         lines,
		Deposit:       sumDeposits(bookings),
		Total:         GrandTotal(lines),
	}

	uc.logger.Info("GenerateReceipt: receipt for %d group(s): %d line(s), total %.2f",
		len(bookings), len(lines), receipt.Total)

	return &Response{Receipt: receipt}, nil
}

func validateRequest(req *Request) error {
	if req == nil || len(req.GroupIDs) == 0 {
		return fmt.Errorf("%w: at least one booking id is required", ErrInvalidInput)
	}
	for _, groupID := range req.GroupIDs {
		if strings.TrimSpace(groupID) == "" {
			return fmt.Errorf("%w: booking id must not be empty", ErrInvalidInput)
		}
	}
	return nil
}

// sumDeposits складывает внесенные депозиты выбранных групп;
// nil, если депозита нет ни у одной
func sumDeposits(bookings []*domain.Booking) *float64 {
	var sum float64
	found := false
	for _, b := range bookings {
		if b.Deposit != nil {
			sum += *b.Deposit
			found = true
		}
	}
	if !found {
		return nil
	}
	return &sum
}
