package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stray-adoption/internal/ports/auth"
)

var errEmptyToken = errors.New("session token required")

type sessionStore struct {
	mu      sync.RWMutex
	byToken map[string]auth.Identity
}

// NewSessionStore crea el store de sesiones en memoria.
// Las sesiones viven lo que vive el proceso; suficiente para este servicio,
// que no promete sesiones que sobrevivan un deploy.
func NewSessionStore() auth.SessionStore {
	return &sessionStore{
		byToken: make(map[string]auth.Identity),
	}
}

func (s *sessionStore) Create(ctx context.Context, token string, id auth.Identity) error {
	if strings.TrimSpace(token) == "" {
		return errEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byToken[token] = id
	return nil
}

func (s *sessionStore) Get(ctx context.Context, token string) (auth.Identity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byToken[token]
	return id, ok
}

func (s *sessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byToken, token)
	return nil
}
