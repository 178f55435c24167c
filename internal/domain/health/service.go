package health

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"stray-adoption/internal/domain/animals"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoRecord     = errors.New("no health record")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AddInput struct {
	Vaccinated bool
	Neutered   bool
	Dewormed   bool
	Notes      string
}

// Add agrega un registro atribuido al registrar/admin que lo cargó.
func (s *Service) Add(ctx context.Context, animalID, updatedBy string, in AddInput) (Record, error) {
	animalID = strings.TrimSpace(animalID)
	updatedBy = strings.TrimSpace(updatedBy)
	if animalID == "" || updatedBy == "" {
		return Record{}, ErrInvalidInput
	}

	rec := Record{
		ID:         uuid.NewString(),
		AnimalID:   animalID,
		Vaccinated: in.Vaccinated,
		Neutered:   in.Neutered,
		Dewormed:   in.Dewormed,
		Notes:      strings.TrimSpace(in.Notes),
		UpdatedBy:  updatedBy,
		UpdatedAt:  s.now(),
	}

	if err := s.repo.Create(ctx, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func (s *Service) Latest(ctx context.Context, animalID string) (Record, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Record{}, ErrInvalidInput
	}
	return s.repo.LatestByAnimal(ctx, animalID)
}

// LatestSnapshot implementa animals.HealthReader.
func (s *Service) LatestSnapshot(ctx context.Context, animalID string) (animals.HealthSnapshot, bool, error) {
	rec, err := s.Latest(ctx, animalID)
	if err != nil {
		if errors.Is(err, ErrNoRecord) {
			return animals.HealthSnapshot{}, false, nil
		}
		return animals.HealthSnapshot{}, false, err
	}

	return animals.HealthSnapshot{
		Vaccinated: rec.Vaccinated,
		Neutered:   rec.Neutered,
		Dewormed:   rec.Dewormed,
		Notes:      rec.Notes,
		UpdatedAt:  rec.UpdatedAt,
	}, true, nil
}
