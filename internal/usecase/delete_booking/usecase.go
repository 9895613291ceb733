package delete_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
)

// UseCase use case для удаления группы бронирования
type UseCase struct {
	bookingRepo BookingRepository
	guestRepo   GuestRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	guestRepo GuestRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case удаления бронирования.
// Если у гостя не остается других групп бронирований, его карточка
// удаляется в той же транзакции, чтобы не копить осиротевших гостей.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || strings.TrimSpace(req.GroupID) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	uc.logger.Info("DeleteBooking: group=%s", req.GroupID)

	guestDeleted := false

	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		guestID, err := uc.bookingRepo.GroupGuestID(ctx, req.GroupID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: %s", ErrBookingNotFound, req.GroupID)
			}
			return fmt.Errorf("%w: failed to resolve guest: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.DeleteGroup(ctx, req.GroupID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return fmt.Errorf("%w: %s", ErrBookingNotFound, req.GroupID)
			}
			return fmt.Errorf("%w: failed to delete booking rows: %v", ErrInternal, err)
		}

		remaining, err := uc.bookingRepo.CountByGuest(ctx, guestID)
		if err != nil {
			return fmt.Errorf("%w: failed to count guest bookings: %v", ErrInternal, err)
		}
		if remaining == 0 {
			if err := uc.guestRepo.Delete(ctx, guestID); err != nil {
				return fmt.Errorf("%w: failed to delete guest: %v", ErrInternal, err)
			}
			guestDeleted = true
		}

		return nil
	})
	if err != nil {
		uc.logger.Error("DeleteBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("DeleteBooking: deleted booking group %s (guest deleted: %t)",
		req.GroupID, guestDeleted)

	return &Response{GroupID: req.GroupID, GuestDeleted: guestDeleted}, nil
}
