package adoptions

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)

	// ListAll devuelve todas las solicitudes, más nuevas primero (vista admin).
	ListAll(ctx context.Context) ([]Application, error)
	ListByUser(ctx context.Context, userID string) ([]Application, error)

	// UpdateReview fija estado + revisor + fecha en una sola escritura.
	UpdateReview(ctx context.Context, id string, st Status, reviewedBy string, at time.Time) error

	// CountSubmittedByAnimal cuenta las solicitudes pendientes de un animal.
	CountSubmittedByAnimal(ctx context.Context, animalID string) (int, error)
}
