package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	userRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/user"
)

// Service сервис аутентификации сотрудников стойки регистрации.
// После успешного входа клиент получает общий сессионный ключ и
// передает его в заголовке на защищенные маршруты.
type Service struct {
	userRepo   UserRepository
	sessionKey string
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, sessionKey string, logger Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		sessionKey: sessionKey,
		logger:     logger,
	}
}

// Login проверяет логин и пароль и возвращает сессионный ключ
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	s.logger.Info("Login: attempt for user=%s", username)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user=%s not found", username)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for user=%s: %v", username, err)
		return "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		s.logger.Warn("Login: wrong password for user=%s", username)
		return "", ErrInvalidCredentials
	}

	s.logger.Info("Login: user=%s logged in", username)
	return s.sessionKey, nil
}

// ValidateSession проверяет сессионный ключ из заголовка запроса
func (s *Service) ValidateSession(key string) bool {
	return key != "" && subtle.ConstantTimeCompare([]byte(s.sessionKey), []byte(key)) == 1
}
