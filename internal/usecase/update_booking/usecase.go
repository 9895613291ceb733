package update_booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
	guestRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/guest"
)

// UseCase use case для полного обновления группы бронирования
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

// Execute выполняет use case обновления бронирования.
// Группа пересоздается под тем же идентификатором: старые строки
// удаляются, новые вставляются. Конфликт по комнатам проверяется
// без учета самой группы, поэтому сдвиг дат внутри своих комнат
// не считается конфликтом.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("UpdateBooking: group=%s, rooms=%v, %s..%s",
		req.GroupID, req.Rooms,
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		current, err := uc.bookingRepo.GetGroup(ctx, req.GroupID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: %s", ErrBookingNotFound, req.GroupID)
			}
			return fmt.Errorf("%w: failed to load booking: %v", ErrInternal, err)
		}

		guestID, err := uc.bookingRepo.GroupGuestID(ctx, req.GroupID)
		if err != nil {
			return fmt.Errorf("%w: failed to resolve guest: %v", ErrInternal, err)
		}

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
		if taken := conflictingRooms(req.Rooms, conflicting, req.GroupID); len(taken) > 0 {
			return fmt.Errorf("%w: %s", ErrRoomConflict, strings.Join(taken, ", "))
		}

		if err := uc.guestRepo.Update(ctx, &guestRepo.Guest{
			ID:      guestID,
			Name:    req.GuestName,
			Phone:   req.Phone,
			Email:   req.Email,
			Address: req.Address,
			TaxID:   req.TaxID,
		}); err != nil {
			return fmt.Errorf("%w: failed to update guest: %v", ErrInternal, err)
		}

		nights := domain.Nights(req.CheckIn, req.CheckOut)
		totalPrice := resolveTotalPrice(req, current, nights, uc.defaultNightRate)
		pricePerNight := domain.UnitPriceForReceipt(totalPrice, len(req.Rooms), nights)

		if err := uc.bookingRepo.DeleteGroup(ctx, req.GroupID); err != nil {
			return fmt.Errorf("%w: failed to replace booking rows: %v", ErrInternal, err)
		}
		if err := uc.bookingRepo.CreateGroup(
			ctx, req.GroupID, guestID, assignments,
			req.CheckIn, req.CheckOut,
			req.Status, req.Deposit, pricePerNight,
		); err != nil {
			return fmt.Errorf("%w: failed to write booking rows: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("UpdateBooking: transaction failed: %v", err)
		return nil, err
	}

	booking, err := uc.bookingRepo.GetGroup(ctx, req.GroupID)
	if err != nil {
		uc.logger.Error("UpdateBooking: failed to read updated booking %s: %v", req.GroupID, err)
		return nil, fmt.Errorf("%w: failed to read updated booking: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateBooking: updated booking group %s", req.GroupID)

	return &Response{Booking: booking}, nil
}

// resolveTotalPrice выбирает итоговую стоимость группы.
// Явно переданная стоимость всегда выигрывает. Без нее прежняя
// стоимость сохраняется, если состав комнат и даты не менялись;
// иначе стоимость пересчитывается по базовому тарифу.
func resolveTotalPrice(req *Request, current *domain.Booking, nights int, rate float64) float64 {
	if req.TotalPrice != nil {
		return *req.TotalPrice
	}

	sameDates := domain.SameDay(req.CheckIn, current.CheckIn) &&
		domain.SameDay(req.CheckOut, current.CheckOut)
	if sameDates && sameRoomSet(req.Rooms, current.Rooms) {
		return current.TotalPrice
	}

	return domain.TotalPrice(nights, len(req.Rooms), rate)
}

// sameRoomSet сравнивает наборы номеров комнат без учета порядка
func sameRoomSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
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

// conflictingRooms возвращает номера запрошенных комнат, занятых
// другими группами в пересекающемся диапазоне
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
