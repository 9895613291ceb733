package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	bookingRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/booking"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/bookings/models"
)

// Service сервис для чтения и агрегирования бронирований
type Service struct {
	bookingRepo BookingRepository
	roomRepo    RoomRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		logger:      logger,
	}
}

// List получает все группы бронирований, свежие первыми
func (s *Service) List(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching all booking groups")

	bookings, err := s.bookingRepo.ListGroups(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d booking groups", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает группу бронирования по идентификатору
func (s *Service) GetByID(ctx context.Context, groupID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking group=%s", groupID)

	booking, err := s.bookingRepo.GetGroup(ctx, groupID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking group=%s not found", groupID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for group=%s: %v", groupID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// DailyCounts считает занятые комнаты по дням в диапазоне [from, to).
// Дни без бронирований присутствуют в ответе с нулевым счетчиком,
// чтобы график на дашборде не имел дыр.
func (s *Service) DailyCounts(ctx context.Context, req *models.DailyCountsRequest) (*models.DailyCountsResponse, error) {
	from := domain.TruncateToDay(req.From)
	to := domain.TruncateToDay(req.To)
	if !from.Before(to) {
		s.logger.Warn("DailyCounts: invalid range %s..%s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: 'from' must be before 'to'", ErrInvalidInput)
	}

	s.logger.Info("DailyCounts: range %s..%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListGroupsOverlapping(ctx, from, to)
	if err != nil {
		s.logger.Error("DailyCounts: repository error: %v", err)
		return nil, fmt.Errorf("%w: DailyCounts - repository error: %v", ErrInternal, err)
	}

	counts := make([]*models.DailyCount, 0)
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		occupied := 0
		for _, b := range bookings {
			if b.ContainsDay(day) {
				occupied += len(b.Rooms)
			}
		}
		counts = append(counts, &models.DailyCount{
			Date:          day.Format(domain.DateFormat),
			OccupiedRooms: occupied,
		})
	}

	return &models.DailyCountsResponse{
		From:   from.Format(domain.DateFormat),
		To:     to.Format(domain.DateFormat),
		Counts: counts,
	}, nil
}

// Stats агрегирует бронирования за календарный год: выручка,
// помесячная загрузка и самые востребованные комнаты
func (s *Service) Stats(ctx context.Context, year int) (*models.StatsResponse, error) {
	if year < 2000 || year > 2200 {
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidInput, year)
	}

	s.logger.Info("Stats: aggregating bookings for year %d", year)

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	bookings, err := s.bookingRepo.ListGroupsOverlapping(ctx, yearStart, yearEnd)
	if err != nil {
		s.logger.Error("Stats: repository error: %v", err)
		return nil, fmt.Errorf("%w: Stats - repository error: %v", ErrInternal, err)
	}

	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: Stats - failed to list rooms: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{
		Year:          year,
		TotalBookings: len(bookings),
	}

	// room-nights по месяцам: ночь относится к месяцу даты заезда в эту ночь
	occupiedNights := make(map[time.Month]int)
	type roomAgg struct {
		bookings int
		nights   int
	}
	byRoom := make(map[string]*roomAgg)

	for _, b := range bookings {
		resp.TotalRevenue += b.TotalPrice

		for _, roomNumber := range b.Rooms {
			agg := byRoom[roomNumber]
			if agg == nil {
				agg = &roomAgg{}
				byRoom[roomNumber] = agg
			}
			agg.bookings++
			agg.nights += b.Nights()
		}

		for night := domain.TruncateToDay(b.CheckIn); night.Before(domain.TruncateToDay(b.CheckOut)); night = night.AddDate(0, 0, 1) {
			if night.Year() != year {
				continue
			}
			occupiedNights[night.Month()] += len(b.Rooms)
		}
	}

	totalRooms := len(rooms)
	for month := time.January; month <= time.December; month++ {
		nights := occupiedNights[month]
		daysInMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()

		rate := 0.0
		if totalRooms > 0 {
			rate = float64(nights) / float64(totalRooms*daysInMonth)
		}

		resp.MonthOccupancy = append(resp.MonthOccupancy, &models.MonthOccupancy{
			Month:          fmt.Sprintf("%04d-%02d", year, month),
			OccupiedNights: nights,
			OccupancyRate:  rate,
		})
	}

	for roomNumber, agg := range byRoom {
		resp.PopularRooms = append(resp.PopularRooms, &models.RoomPopularity{
			RoomNumber: roomNumber,
			Bookings:   agg.bookings,
			Nights:     agg.nights,
		})
	}
	sort.Slice(resp.PopularRooms, func(i, j int) bool {
		if resp.PopularRooms[i].Bookings != resp.PopularRooms[j].Bookings {
			return resp.PopularRooms[i].Bookings > resp.PopularRooms[j].Bookings
		}
		return resp.PopularRooms[i].RoomNumber < resp.PopularRooms[j].RoomNumber
	})

	s.logger.Info("Stats: year %d: %d bookings, revenue %.2f",
		year, resp.TotalBookings, resp.TotalRevenue)

	return resp, nil
}
