package health

import "time"

// Record es un registro de salud de un animal. Log append-only:
// el estado "actual" es el registro con mayor UpdatedAt.
type Record struct {
	ID       string
	AnimalID string

	Vaccinated bool
	Neutered   bool
	Dewormed   bool

	Notes string

	UpdatedBy string
	UpdatedAt time.Time
}
