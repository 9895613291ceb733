package cleaning

import (
	"context"
	"errors"
	"fmt"

	"github.com/sunriver-hotel/frontdesk-service/internal/domain"
	cleaningRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/cleaning"
	"github.com/sunriver-hotel/frontdesk-service/internal/service/cleaning/models"
)

// Service сервис статусов уборки комнат
type Service struct {
	cleaningRepo CleaningRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса уборки
func NewService(cleaningRepo CleaningRepository, logger Logger) *Service {
	return &Service{
		cleaningRepo: cleaningRepo,
		logger:       logger,
	}
}

// List получает статусы уборки всех комнат
func (s *Service) List(ctx context.Context) (*models.CleaningListResponse, error) {
	s.logger.Info("List: fetching cleaning statuses")

	statuses, err := s.cleaningRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStatusList(statuses), nil
}

// SetStatus выставляет статус уборки комнаты вручную
func (s *Service) SetStatus(ctx context.Context, roomNumber string, status string) (*models.CleaningStatusResponse, error) {
	state := domain.CleaningState(status)
	if !domain.IsValidCleaningState(state) {
		s.logger.Warn("SetStatus: invalid status %q for room=%s", status, roomNumber)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	s.logger.Info("SetStatus: room=%s -> %s", roomNumber, state)

	updated, err := s.cleaningRepo.SetStatus(ctx, roomNumber, state)
	if err != nil {
		if errors.Is(err, cleaningRepo.ErrRoomNotFound) {
			s.logger.Warn("SetStatus: room=%s not found", roomNumber)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("SetStatus: repository error for room=%s: %v", roomNumber, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainStatus(updated), nil
}
