package run_cleaning_reset

import (
	"context"
	"fmt"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
)

// UseCase use case ежедневного сброса статусов уборки.
// Комнаты, в которых сегодня живут гости, переводятся в "Needs Cleaning";
// статусы остальных комнат не трогаются.
type UseCase struct {
	bookingRepo  BookingRepository
	cleaningRepo CleaningRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cleaningRepo CleaningRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		cleaningRepo: cleaningRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SetTimeProvider устанавливает провайдер времени (для тестирования)
func (uc *UseCase) SetTimeProvider(tp TimeProvider) {
	uc.timeProvider = tp
}

// Execute выполняет сброс статусов уборки за текущий день.
// Операция идемпотентна: уже помеченные комнаты не обновляются,
// поэтому повторный запуск за тот же день вернет нулевой счетчик.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	today := domain.TruncateToDay(uc.timeProvider.Now())
	tomorrow := today.AddDate(0, 0, 1)

	uc.logger.Info("CleaningReset: running for %s", today.Format(domain.DateFormat))

	bookings, err := uc.bookingRepo.ListGroupsOverlapping(ctx, today, tomorrow)
	if err != nil {
		uc.logger.Error("CleaningReset: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	occupied := occupiedRoomNumbers(bookings, today)
	if len(occupied) == 0 {
		uc.logger.Info("CleaningReset: no occupied rooms for %s", today.Format(domain.DateFormat))
		return &Response{Date: today, OccupiedRooms: occupied, MarkedCount: 0}, nil
	}

	marked, err := uc.cleaningRepo.MarkNeedsCleaning(ctx, occupied)
	if err != nil {
		uc.logger.Error("CleaningReset: failed to mark rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to mark rooms: %v", ErrInternal, err)
	}

	uc.logger.Info("CleaningReset: %d occupied room(s), %d marked for cleaning",
		len(occupied), marked)

	return &Response{Date: today, OccupiedRooms: occupied, MarkedCount: marked}, nil
}

// occupiedRoomNumbers собирает без дубликатов номера комнат,
// занятых в указанный день
func occupiedRoomNumbers(bookings []*domain.Booking, day time.Time) []string {
	seen := make(map[string]bool)
	var occupied []string

	for _, b := range bookings {
		if !b.ContainsDay(day) {
			continue
		}
		for _, roomNumber := range b.Rooms {
			if !seen[roomNumber] {
				seen[roomNumber] = true
				occupied = append(occupied, roomNumber)
			}
		}
	}

	domain.SortRoomNumbers(occupied)

	return occupied
}
