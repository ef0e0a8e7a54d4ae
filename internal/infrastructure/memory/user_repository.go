package memory

import (
	"context"
	"sync"

	"github.com/adrianhuber/accounts-api/internal/domain/entity"
	"github.com/adrianhuber/accounts-api/internal/domain/repository"
)

// UserRepository is an in-memory implementation of the user store,
// used by tests and local development. The check-and-insert in Create
// happens under the lock, so concurrent registrations for the same
// email cannot both succeed.
type UserRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*entity.User
	byID    map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byEmail: make(map[string]*entity.User),
		byID:    make(map[string]*entity.User),
	}
}

func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrConflict
	}
	cp := *u
	r.byEmail[cp.Email] = &cp
	r.byID[cp.ID] = &cp
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Count reports the number of stored users; test-only convenience with
// no domain invariant attached.
func (r *UserRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}

var _ repository.UserRepository = (*UserRepository)(nil)
