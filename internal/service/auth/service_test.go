package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "github.com/sunriver-hotel/frontdesk-service/internal/infra/storage/user"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUserRepo struct {
	users map[string]*userRepo.User
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*userRepo.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

func newAuthService() *Service {
	repo := &fakeUserRepo{users: map[string]*userRepo.User{
		"frontdesk": {ID: 1, Username: "frontdesk", Password: "sunriver"},
	}}
	return NewService(repo, "session-key-123", nopLogger{})
}

func TestLogin_Success(t *testing.T) {
	svc := newAuthService()

	key, err := svc.Login(context.Background(), "frontdesk", "sunriver")
	require.NoError(t, err)
	assert.Equal(t, "session-key-123", key)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), "frontdesk", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), "nobody", "sunriver")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Login(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateSession(t *testing.T) {
	svc := newAuthService()

	assert.True(t, svc.ValidateSession("session-key-123"))
	assert.False(t, svc.ValidateSession("other"))
	assert.False(t, svc.ValidateSession(""))
}
