package auth

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/auth-gateway/internal/domain"
)

// fakeUserStore is an in-memory UserStore for tests. Missing entries fail
// with pgx.ErrNoRows like the real repository.
type fakeUserStore struct {
	users map[int64]*domain.User
}

func newFakeUserStore(users ...*domain.User) *fakeUserStore {
	store := &fakeUserStore{users: make(map[int64]*domain.User)}
	for _, user := range users {
		store.users[user.ID] = user
	}
	return store
}

func (s *fakeUserStore) GetByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return user, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, pgx.ErrNoRows
}
