package user

import (
	"context"
	"errors"
	"sync"
)

var ErrEmailExists = errors.New("email already exists")

type Repository interface {
	Create(ctx context.Context, u User) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu    sync.Mutex
	users []User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make([]User, 0)}
}

func (r *InMemoryRepository) Create(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailExists
		}
	}

	u.UserID = len(r.users) + 1
	r.users = append(r.users, u)
	return nil
}

func (r *InMemoryRepository) List() []User {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}
