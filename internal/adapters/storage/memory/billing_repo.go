package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"stray-adoption/internal/domain/billing"
)

type billingRepo struct {
	mu             sync.RWMutex
	orders         map[string]billing.Order
	revenueByOrder map[string]billing.RevenueRecord
}

func NewBillingRepo() billing.Repository {
	return &billingRepo{
		orders:         make(map[string]billing.Order),
		revenueByOrder: make(map[string]billing.RevenueRecord),
	}
}

func (r *billingRepo) CreateOrder(ctx context.Context, o billing.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(o.ID) == "" {
		return errors.New("order id required")
	}
	if _, exists := r.orders[o.ID]; exists {
		return errors.New("order already exists")
	}
	r.orders[o.ID] = o
	return nil
}

func (r *billingRepo) CreateRevenue(ctx context.Context, rec billing.RevenueRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("revenue id required")
	}
	if _, exists := r.orders[rec.OrderID]; !exists {
		return errors.New("order not found for revenue record")
	}
	r.revenueByOrder[rec.OrderID] = rec
	return nil
}

func (r *billingRepo) ListByUser(ctx context.Context, userID string) ([]billing.OrderWithRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]billing.OrderWithRevenue, 0)
	for _, o := range r.orders {
		if o.UserID != userID {
			continue
		}
		out = append(out, r.withRevenue(o))
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *billingRepo) ListAll(ctx context.Context) ([]billing.OrderWithRevenue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]billing.OrderWithRevenue, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, r.withRevenue(o))
	}
	sortOrdersNewestFirst(out)
	return out, nil
}

func (r *billingRepo) withRevenue(o billing.Order) billing.OrderWithRevenue {
	item := billing.OrderWithRevenue{Order: o}
	if rec, ok := r.revenueByOrder[o.ID]; ok {
		amount := rec.Amount
		item.Revenue = &amount
	}
	return item
}

func sortOrdersNewestFirst(items []billing.OrderWithRevenue) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
