package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/auth-gateway/internal/auth"
	"github.com/spec-kit/auth-gateway/internal/domain"
	"github.com/spec-kit/auth-gateway/internal/events"
	apperrors "github.com/spec-kit/auth-gateway/pkg/util/errorutil"
)

type memoryRepo struct {
	nextID int64
	users  map[int64]*domain.User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{nextID: 1, users: make(map[int64]*domain.User)}
}

func (r *memoryRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.ID] = user
	return nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (r *memoryRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func TestRegisterCreatesEnabledUserWithHashedPassword(t *testing.T) {
	repo := newMemoryRepo()
	dispatcher := events.NewInMemoryDispatcher()

	var registered []events.Event
	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, event events.Event) error {
		registered = append(registered, event)
		return nil
	})

	svc := NewUserService(repo, dispatcher, bcrypt.MinCost)

	user, err := svc.Register(context.Background(), "alice", "secret1", "Alice", "Smith")
	require.NoError(t, err)

	assert.Equal(t, domain.RoleUser, user.Role)
	assert.True(t, user.Enabled)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, auth.ComparePassword(user.PasswordHash, "secret1"))

	require.Len(t, registered, 1)
	assert.Equal(t, "alice", registered[0].Username)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc := NewUserService(newMemoryRepo(), nil, bcrypt.MinCost)

	_, err := svc.Register(context.Background(), "alice", "secret1", "", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other-pass", "", "")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "CONFLICT", domainErr.Code)
}

func TestGetByIDMapsMissingUser(t *testing.T) {
	svc := NewUserService(newMemoryRepo(), nil, bcrypt.MinCost)

	_, err := svc.GetByID(context.Background(), 99)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
}
