package billing

import "context"

type Repository interface {
	CreateOrder(ctx context.Context, o Order) error
	CreateRevenue(ctx context.Context, rec RevenueRecord) error

	// Listados más nuevos primero, con el ingreso asociado a cada orden.
	ListByUser(ctx context.Context, userID string) ([]OrderWithRevenue, error)
	ListAll(ctx context.Context) ([]OrderWithRevenue, error)
}
