package service

import (
	"context"
	"testing"

	"simon_webapp/internal/domain"
	"simon_webapp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.users[u.Username]; ok {
		return repository.ErrUserExists
	}
	f.nextID++
	u.ID = f.nextID
	f.users[u.Username] = u
	return nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)

	u, err := svc.Register(context.Background(), "player_one", "correcthorse")
	require.NoError(t, err)
	assert.NotEqual(t, "correcthorse", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correcthorse")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	cases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{"short username", "ab", "longenough", ErrInvalidUsername},
		{"bad characters", "has space", "longenough", ErrInvalidUsername},
		{"short password", "player_one", "short", ErrWeakPassword},
	}

	for _, tc := range cases {
		_, err := svc.Register(context.Background(), tc.username, tc.password)
		assert.ErrorIs(t, err, tc.wantErr, tc.name)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := NewAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), "player_one", "correcthorse")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "player_one", "otherpassword")
	assert.ErrorIs(t, err, repository.ErrUserExists)
}

func TestLogin(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAuthService(store)

	registered, err := svc.Register(context.Background(), "player_one", "correcthorse")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "player_one", "correcthorse")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)

	_, err = svc.Login(context.Background(), "player_one", "wrongpassword")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody_here", "correcthorse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
