package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"stray-adoption/internal/domain/animals"
)

type animalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) List(ctx context.Context, onlyPublished bool) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if onlyPublished && a.Status != animals.StatusPublished {
			continue
		}
		out = append(out, a)
	}

	// Más nuevos primero, como los listados de la API.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *animalRepo) UpdateStatus(ctx context.Context, id string, st animals.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.ErrNotFound
	}
	a.Status = st
	r.byID[id] = a
	return nil
}
