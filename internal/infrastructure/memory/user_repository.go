package memory

import (
	"sync"

	"linkedpro/internal/domain/entities"
	"linkedpro/internal/domain/repositories"
)

// UserRepository keeps identity records in process memory. Records live for
// the lifetime of the process and are never deleted.
//
// Every method exchanges copies: stored records are only ever touched while
// holding the lock, so concurrent lookups and updates never share memory.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*entities.User
	nextID int
}

func cloneUser(user *entities.User) *entities.User {
	clone := *user
	return &clone
}

// NewUserRepository builds a store pre-loaded with the given records.
// Sequential ids continue after the highest pre-loaded id.
func NewUserRepository(initial ...*entities.User) *UserRepository {
	repo := &UserRepository{
		users:  make([]*entities.User, 0, len(initial)),
		nextID: 1,
	}
	for _, user := range initial {
		repo.users = append(repo.users, cloneUser(user))
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
	}
	return repo
}

func (r *UserRepository) Create(user *entities.User) *entities.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users = append(r.users, stored)
	return cloneUser(stored)
}

func (r *UserRepository) FindByID(id int) *entities.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.ID == id {
			return cloneUser(user)
		}
	}
	return nil
}

func (r *UserRepository) FindByEmail(email string) *entities.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email == email {
			return cloneUser(user)
		}
	}
	return nil
}

// Update replaces the stored record with the same id. The stored entry is
// the single source of truth; later lookups see the new state.
func (r *UserRepository) Update(user *entities.User) *entities.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.users {
		if existing.ID == user.ID {
			r.users[i] = cloneUser(user)
			return cloneUser(user)
		}
	}
	return nil
}

func (r *UserRepository) All() []*entities.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.User, len(r.users))
	for i, user := range r.users {
		out[i] = cloneUser(user)
	}
	return out
}

var _ repositories.UserRepository = (*UserRepository)(nil)
