package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrAlreadyAdopted bloquea el republish de un animal con adopción cerrada.
	ErrAlreadyAdopted = errors.New("already adopted")
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

type CreateInput struct {
	Name        string
	Species     string
	FosterType  string
	Sex         string
	Age         string
	Location    string
	Description string
}

// Register da de alta un animal. Siempre entra en draft.
func (s *Service) Register(ctx context.Context, createdBy string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(createdBy) == "" {
		return Animal{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Animal{}, ErrInvalidInput
	}

	fosterType := strings.TrimSpace(in.FosterType)
	if fosterType == "" {
		fosterType = FosterTypeDefault
	}

	a := Animal{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Sex:         strings.TrimSpace(in.Sex),
		Age:         strings.TrimSpace(in.Age),
		Status:      StatusDraft,
		FosterType:  fosterType,
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		CreatedBy:   createdBy,
		CreatedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List devuelve la vista según quién mira: el staff (registrar/admin) ve todo,
// el resto solo published.
func (s *Service) List(ctx context.Context, includeUnpublished bool) ([]Animal, error) {
	return s.repo.List(ctx, !includeUnpublished)
}

// Publish: cualquier estado -> published, sin condiciones.
func (s *Service) Publish(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, strings.TrimSpace(id), StatusPublished)
}

// Unpublish: cualquier estado -> draft, sin condiciones. Solo admin lo expone.
func (s *Service) Unpublish(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, strings.TrimSpace(id), StatusDraft)
}

// Republish permite volver a published desde cualquier estado salvo adopted:
// una adopción cerrada no se deshace desde el listado.
func (s *Service) Republish(ctx context.Context, id string) error {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Status == StatusAdopted {
		return ErrAlreadyAdopted
	}
	return s.repo.UpdateStatus(ctx, a.ID, StatusPublished)
}

// SetStatus es el gancho del flujo de adopción (approve/reject).
// Otros módulos lo consumen vía interfaz propia para no acoplarse al Service.
func (s *Service) SetStatus(ctx context.Context, id string, st Status) error {
	return s.repo.UpdateStatus(ctx, strings.TrimSpace(id), st)
}
