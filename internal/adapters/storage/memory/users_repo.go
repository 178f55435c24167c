// Package memory implementa los repositorios sobre mapas en memoria.
// Es el fallback de desarrollo y el backend de los tests; el router lo usa
// cuando no hay DSN configurado.
package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stray-adoption/internal/domain/users"
)

type userRepo struct {
	mu         sync.RWMutex
	byID       map[string]users.User
	byUsername map[string]string // username -> id
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:       make(map[string]users.User),
		byUsername: make(map[string]string),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return errors.New("username already taken")
	}

	r.byID[u.ID] = u
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byUsername[username]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}
