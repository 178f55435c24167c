package health

import "context"

// Repository no tiene update ni delete: los registros solo se agregan.
type Repository interface {
	Create(ctx context.Context, rec Record) error

	// LatestByAnimal devuelve el registro con mayor UpdatedAt.
	// Empates: cualquiera de los empatados vale.
	LatestByAnimal(ctx context.Context, animalID string) (Record, error)
}
