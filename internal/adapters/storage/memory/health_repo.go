package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"stray-adoption/internal/domain/health"
)

type healthRepo struct {
	mu       sync.RWMutex
	byAnimal map[string][]health.Record
}

func NewHealthRepo() health.Repository {
	return &healthRepo{
		byAnimal: make(map[string][]health.Record),
	}
}

func (r *healthRepo) Create(ctx context.Context, rec health.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("record id required")
	}
	r.byAnimal[rec.AnimalID] = append(r.byAnimal[rec.AnimalID], rec)
	return nil
}

func (r *healthRepo) LatestByAnimal(ctx context.Context, animalID string) (health.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	recs := r.byAnimal[animalID]
	if len(recs) == 0 {
		return health.Record{}, health.ErrNoRecord
	}

	latest := recs[0]
	for _, rec := range recs[1:] {
		if rec.UpdatedAt.After(latest.UpdatedAt) {
			latest = rec
		}
	}
	return latest, nil
}
