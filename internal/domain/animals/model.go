package animals

import "time"

// Status es el estado de publicación de un animal.
// pending existe en el esquema original pero hoy ninguna transición lo produce.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusAdopted   Status = "adopted"
)

// FosterTypeDefault aplica cuando el alta no especifica tipo de acogida.
const FosterTypeDefault = "family"

// Animal es un registro de animal callejero listado para adopción.
// Status es el único campo mutable; el resto se fija en el alta.
type Animal struct {
	ID string

	Name    string
	Species string // cat/dog/other
	Sex     string
	Age     string // texto libre ("2 años", "cachorro")

	Status     Status
	FosterType string

	Description string
	Location    string

	CreatedBy string
	CreatedAt time.Time
}
