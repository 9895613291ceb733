package get_available_rooms

import (
	"context"
	"fmt"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// UseCase use case для получения свободных комнат на диапазон дат
type UseCase struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения свободных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableRooms: check_in=%s, check_out=%s",
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	if !domain.TruncateToDay(req.CheckIn).Before(domain.TruncateToDay(req.CheckOut)) {
		uc.logger.Warn("GetAvailableRooms: invalid date range %s..%s",
			req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
		return nil, ErrInvalidDateRange
	}

	allRooms, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// Достаточно бронирований, пересекающих запрошенный диапазон:
	// остальные не влияют на доступность
	bookings, err := uc.bookingRepo.ListGroupsOverlapping(ctx, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	exclude := ""
	if req.ExcludeGroupID != nil {
		exclude = *req.ExcludeGroupID
	}

	available, err := FindAvailableRooms(allRooms, bookings, req.CheckIn, req.CheckOut, exclude)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available for %s..%s",
		len(available), len(allRooms),
		req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	return &Response{
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Rooms:    available,
	}, nil
}
