package adoptions

import "time"

// Status es el estado de una solicitud de adopción.
// Una solicitud nace submitted y la resuelve un admin una sola vez
// (aunque el sistema no impide re-resolverla, ver Service).
type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

// Application es la solicitud de un usuario para adoptar un animal puntual.
type Application struct {
	ID       string
	AnimalID string
	UserID   string

	Contact string
	Reason  string

	Status     Status
	ReviewedBy *string

	CreatedAt  time.Time
	ReviewedAt *time.Time
}
