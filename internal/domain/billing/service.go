package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	catalog Catalog
	repo    Repository
	now     func() time.Time
}

func NewService(catalog Catalog, repo Repository) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
		now:     time.Now,
	}
}

func (s *Service) Catalog() Catalog {
	return s.catalog
}

type PaymentInput struct {
	ServiceType string
	ProductName string
	Amount      float64
}

// Pay crea la orden y su fila de ingreso, en ese orden.
// Son dos escrituras dependientes sin transacción que las abarque; si falla
// la segunda, la orden queda sin ingreso y el request devuelve error.
func (s *Service) Pay(ctx context.Context, userID string, in PaymentInput) (Order, error) {
	userID = strings.TrimSpace(userID)
	serviceType := strings.TrimSpace(in.ServiceType)
	productName := strings.TrimSpace(in.ProductName)

	if userID == "" || serviceType == "" || productName == "" || in.Amount <= 0 {
		return Order{}, ErrInvalidInput
	}

	now := s.now()
	o := Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		ServiceType: serviceType,
		ProductName: productName,
		Amount:      in.Amount,
		CreatedAt:   now,
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return Order{}, err
	}

	rec := RevenueRecord{
		ID:          uuid.NewString(),
		OrderID:     o.ID,
		RevenueType: serviceType,
		Amount:      in.Amount,
		CreatedAt:   now,
	}
	if err := s.repo.CreateRevenue(ctx, rec); err != nil {
		return Order{}, err
	}

	return o, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]OrderWithRevenue, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]OrderWithRevenue, error) {
	return s.repo.ListAll(ctx)
}
