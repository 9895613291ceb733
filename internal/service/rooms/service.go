package rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/rooms/models"
)

// Service сервис каталога комнат и шахматки занятости
type Service struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	cleaningRepo CleaningRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	cleaningRepo CleaningRepository,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		cleaningRepo: cleaningRepo,
		logger:       logger,
	}
}

// List получает каталог комнат в порядке номеров каталога
func (s *Service) List(ctx context.Context) (*models.RoomListResponse, error) {
	s.logger.Info("List: fetching room catalog")

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// Occupancy строит шахматку занятости на выбранный день.
// Для каждой комнаты вычисляются теги дня (vacant, check_in, check_out,
// in_house) и текущий статус уборки. Выезд в выбранный день тоже
// попадает на шахматку, поэтому выборка бронирований захватывает
// предыдущий день.
func (s *Service) Occupancy(ctx context.Context, date time.Time) (*models.OccupancyBoardResponse, error) {
	day := domain.TruncateToDay(date)

	s.logger.Info("Occupancy: building board for %s", day.Format(domain.DateFormat))

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("Occupancy: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - failed to list rooms: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.ListGroupsOverlapping(ctx, day.AddDate(0, 0, -1), day.AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("Occupancy: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - failed to list bookings: %v", ErrInternal, err)
	}

	cleaningStatuses, err := s.cleaningRepo.List(ctx)
	if err != nil {
		s.logger.Error("Occupancy: failed to list cleaning statuses: %v", err)
		return nil, fmt.Errorf("%w: Occupancy - failed to list cleaning statuses: %v", ErrInternal, err)
	}
	cleaningByRoom := make(map[string]domain.CleaningState, len(cleaningStatuses))
	for _, cs := range cleaningStatuses {
		cleaningByRoom[cs.RoomNumber] = cs.Status
	}

	board := make([]*models.RoomOccupancyResponse, 0, len(rooms))
	for _, room := range rooms {
		states := domain.ClassifyRoomDay(room.Number, day, bookings)
		stateStrings := make([]string, 0, len(states))
		for _, st := range states {
			stateStrings = append(stateStrings, string(st))
		}

		entry := &models.RoomOccupancyResponse{
			Number:         room.Number,
			Floor:          room.Floor,
			TypeName:       room.TypeName(),
			States:         stateStrings,
			CleaningStatus: string(cleaningByRoom[room.Number]),
		}

		if occupant := domain.RoomOccupiedOn(room.Number, day, bookings); occupant != nil {
			entry.Occupant = &models.OccupantResponse{
				BookingID: occupant.GroupID,
				GuestName: occupant.GuestName,
				CheckIn:   occupant.CheckIn.Format(domain.DateFormat),
				CheckOut:  occupant.CheckOut.Format(domain.DateFormat),
				Status:    string(occupant.Status),
			}
		}

		board = append(board, entry)
	}

	return &models.OccupancyBoardResponse{
		Date:  day.Format(domain.DateFormat),
		Rooms: board,
	}, nil
}
