package adoptions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"stray-adoption/internal/domain/animals"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrAnimalNotFound = errors.New("animal not found")
)

// AnimalRegistry es lo que el flujo de adopción necesita del registro de
// animales. Interfaz del lado consumidor para testear el flujo con stubs.
type AnimalRegistry interface {
	GetByID(ctx context.Context, id string) (animals.Animal, error)
	SetStatus(ctx context.Context, id string, st animals.Status) error
}

// UserDirectory resuelve usernames para la vista de revisión del admin.
type UserDirectory interface {
	UsernameOf(ctx context.Context, userID string) (string, error)
}

type Service struct {
	repo     Repository
	registry AnimalRegistry
	users    UserDirectory
	now      func() time.Time
}

func NewService(repo Repository, registry AnimalRegistry, users UserDirectory) *Service {
	return &Service{
		repo:     repo,
		registry: registry,
		users:    users,
		now:      time.Now,
	}
}

type SubmitInput struct {
	AnimalID string
	Contact  string
	Reason   string
}

// Submit crea una solicitud contra cualquier animal existente.
// Política deliberadamente permisiva: no se valida que el animal esté
// published ni que no tenga ya una adopción cerrada.
func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Application, error) {
	userID = strings.TrimSpace(userID)
	animalID := strings.TrimSpace(in.AnimalID)
	contact := strings.TrimSpace(in.Contact)

	if userID == "" || animalID == "" || contact == "" {
		return Application{}, ErrInvalidInput
	}

	if _, err := s.registry.GetByID(ctx, animalID); err != nil {
		return Application{}, ErrAnimalNotFound
	}

	a := Application{
		ID:        uuid.NewString(),
		AnimalID:  animalID,
		UserID:    userID,
		Contact:   contact,
		Reason:    strings.TrimSpace(in.Reason),
		Status:    StatusSubmitted,
		CreatedAt: s.now(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Application{}, err
	}
	return a, nil
}

// Approve marca la solicitud approved y fuerza el animal a adopted.
// No chequea el estado previo de la solicitud: re-aprobar una ya resuelta
// vuelve a forzar adopted. Comportamiento heredado, se mantiene a propósito.
func (s *Service) Approve(ctx context.Context, adminID, applicationID string) error {
	app, err := s.repo.GetByID(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return ErrNotFound
	}

	if err := s.repo.UpdateReview(ctx, app.ID, StatusApproved, adminID, s.now()); err != nil {
		return err
	}

	return s.registry.SetStatus(ctx, app.AnimalID, animals.StatusAdopted)
}

// RejectResult describe qué pasó con el animal después del rechazo.
type RejectResult struct {
	Message string

	// AnimalRestored: el animal volvió a published.
	AnimalRestored bool

	// RollbackSkipped: algún paso secundario falló después del punto de
	// commit; la solicitud quedó rejected igual.
	RollbackSkipped bool
}

// Reject marca la solicitud rejected y después intenta restaurar la
// visibilidad del animal:
//   - si quedan otras solicitudes submitted del mismo animal, no se toca nada
//     (otro postulante sigue en carrera);
//   - si el animal está en draft, se respeta la baja manual del admin;
//   - en cualquier otro estado (adopted incluido) vuelve a published.
//
// El punto de commit es la escritura del rechazo: todo error posterior se
// degrada a una respuesta exitosa con mensaje, nunca a un error del request.
func (s *Service) Reject(ctx context.Context, adminID, applicationID string) (RejectResult, error) {
	app, err := s.repo.GetByID(ctx, strings.TrimSpace(applicationID))
	if err != nil {
		return RejectResult{}, ErrNotFound
	}

	if err := s.repo.UpdateReview(ctx, app.ID, StatusRejected, adminID, s.now()); err != nil {
		return RejectResult{}, err
	}

	pending, err := s.repo.CountSubmittedByAnimal(ctx, app.AnimalID)
	if err != nil {
		return RejectResult{
			Message:         "application rejected (pending check failed, animal status untouched)",
			RollbackSkipped: true,
		}, nil
	}
	if pending > 0 {
		return RejectResult{
			Message: "application rejected (animal still has pending applications)",
		}, nil
	}

	a, err := s.registry.GetByID(ctx, app.AnimalID)
	if err != nil {
		return RejectResult{
			Message:         "application rejected (animal status lookup failed, not restored)",
			RollbackSkipped: true,
		}, nil
	}
	if a.Status == animals.StatusDraft {
		return RejectResult{
			Message: "application rejected (animal is unpublished, left as draft)",
		}, nil
	}

	if err := s.registry.SetStatus(ctx, app.AnimalID, animals.StatusPublished); err != nil {
		return RejectResult{
			Message:         "application rejected (animal status restore failed)",
			RollbackSkipped: true,
		}, nil
	}

	return RejectResult{
		Message:        "application rejected, animal restored to published",
		AnimalRestored: true,
	}, nil
}

// ReviewItem es una solicitud con los nombres ya resueltos (vista admin).
type ReviewItem struct {
	Application
	Username   string
	AnimalName string
}

func (s *Service) ListForReview(ctx context.Context) ([]ReviewItem, error) {
	apps, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ReviewItem, 0, len(apps))
	for _, app := range apps {
		item := ReviewItem{Application: app}
		// Tolera referencias huérfanas: la fila se muestra igual, sin nombre.
		if name, err := s.users.UsernameOf(ctx, app.UserID); err == nil {
			item.Username = name
		}
		if a, err := s.registry.GetByID(ctx, app.AnimalID); err == nil {
			item.AnimalName = a.Name
		}
		out = append(out, item)
	}
	return out, nil
}

// MyApplication es la vista del propio usuario sobre sus solicitudes.
type MyApplication struct {
	Application
	AnimalName string
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]MyApplication, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	apps, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]MyApplication, 0, len(apps))
	for _, app := range apps {
		item := MyApplication{Application: app}
		if a, err := s.registry.GetByID(ctx, app.AnimalID); err == nil {
			item.AnimalName = a.Name
		}
		out = append(out, item)
	}
	return out, nil
}
