package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
	guestRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/guest"
)

// UseCase use case для создания группы бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	roomRepo         RoomRepository
	guestRepo        GuestRepository
	txManager        TransactionManager
	logger           Logger
	defaultNightRate float64
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	guestRepo GuestRepository,
	txManager TransactionManager,
	logger Logger,
	defaultNightRate float64,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		guestRepo:        guestRepo,
		txManager:        txManager,
		logger:           logger,
		defaultNightRate: defaultNightRate,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка строк выполняются в одной
// сериализуемой транзакции, чтобы две параллельные заявки
// не заняли одну и ту же комнату на пересекающиеся даты.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	nights := domain.Nights(req.CheckIn, req.CheckOut)

	// Введенная оператором стоимость имеет приоритет над расчетной
	totalPrice := domain.TotalPrice(nights, len(req.Rooms), uc.defaultNightRate)
	if req.TotalPrice != nil {
		totalPrice = *req.TotalPrice
	}
	pricePerNight := domain.UnitPriceForReceipt(totalPrice, len(req.Rooms), nights)

	uc.logger.Info("CreateBooking: guest=%s, rooms=%v, %s..%s, total=%.2f",
		req.GuestName, req.Rooms,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		totalPrice)

	groupID := uuid.NewString()

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		rooms, err := uc.roomRepo.GetByNumbers(ctx, req.Rooms)
		if err != nil {
			return fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
		}
		assignments, err := buildAssignments(req.Rooms, rooms)
		if err != nil {
			return err
		}

		conflicting, err := uc.bookingRepo.ListGroupsOverlapping(ctx, req.CheckIn, req.CheckOut)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}
		if taken := conflictingRooms(req.Rooms, conflicting, ""); len(taken) > 0 {
			return fmt.Errorf("%w: %s", ErrRoomConflict, strings.Join(taken, ", "))
		}

		guestID, err := uc.guestRepo.Create(ctx, &guestRepo.Guest{
			Name:    req.GuestName,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			TaxID:   req.TaxID,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create guest: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.CreateGroup(
			ctx, groupID, guestID, assignments,
			req.CheckIn, req.CheckOut,
			req.Status, req.Deposit, pricePerNight,
		); err != nil {
			return fmt.Errorf("%w: failed to create booking group: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetGroup(ctx, groupID)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read created booking %s: %v", groupID, err)
		return nil, fmt.Errorf("%w: failed to read created booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: created booking group %s", groupID)

	return &Response{Booking: booking}, nil
}

// buildAssignments сопоставляет запрошенные номера комнат с каталогом,
// сохраняя порядок из запроса
func buildAssignments(requested []string, rooms []*domain.Room) ([]bookingRepo.RoomAssignment, error) {
	byNumber := make(map[string]*domain.Room, len(rooms))
	for _, room := range rooms {
		byNumber[room.Number] = room
	}

	assignments := make([]bookingRepo.RoomAssignment, 0, len(requested))
	for _, number := range requested {
		room, ok := byNumber[number]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, number)
		}
		assignments = append(assignments, bookingRepo.RoomAssignment{
			RoomID:     room.ID,
			RoomNumber: room.Number,
		})
	}

	return assignments, nil
}

// conflictingRooms возвращает номера запрошенных комнат, уже занятых
// пересекающимися группами бронирований (кроме excludeGroupID)
func conflictingRooms(requested []string, bookings []*domain.Booking, excludeGroupID string) []string {
	taken := make(map[string]bool)
	for _, b := range bookings {
		if excludeGroupID != "" && b.GroupID == excludeGroupID {
			continue
		}
		for _, roomNumber := range b.Rooms {
			taken[roomNumber] = true
		}
	}

	var conflicts []string
	for _, number := range requested {
		if taken[number] {
			conflicts = append(conflicts, number)
		}
	}

	return conflicts
}
