package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"stray-adoption/internal/domain/adoptions"
)

type adoptionRepo struct {
	mu   sync.RWMutex
	byID map[string]adoptions.Application
}

func NewAdoptionRepo() adoptions.Repository {
	return &adoptionRepo{
		byID: make(map[string]adoptions.Application),
	}
}

func (r *adoptionRepo) Create(ctx context.Context, a adoptions.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("application id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("application already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *adoptionRepo) GetByID(ctx context.Context, id string) (adoptions.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.Application{}, adoptions.ErrNotFound
	}
	return a, nil
}

func (r *adoptionRepo) ListAll(ctx context.Context) ([]adoptions.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Application, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *adoptionRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]adoptions.Application, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (r *adoptionRepo) UpdateReview(ctx context.Context, id string, st adoptions.Status, reviewedBy string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return adoptions.ErrNotFound
	}

	a.Status = st
	a.ReviewedBy = &reviewedBy
	a.ReviewedAt = &at
	r.byID[id] = a
	return nil
}

func (r *adoptionRepo) CountSubmittedByAnimal(ctx context.Context, animalID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, a := range r.byID {
		if a.AnimalID == animalID && a.Status == adoptions.StatusSubmitted {
			n++
		}
	}
	return n, nil
}

func sortNewestFirst(apps []adoptions.Application) {
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].CreatedAt.After(apps[j].CreatedAt)
	})
}
