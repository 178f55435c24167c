package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)

	// List devuelve los animales más nuevos primero.
	// onlyPublished filtra la vista pública (anónimos y rol user).
	List(ctx context.Context, onlyPublished bool) ([]Animal, error)

	UpdateStatus(ctx context.Context, id string, st Status) error
}
