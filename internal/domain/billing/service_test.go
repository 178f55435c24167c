package billing

import (
	"context"
	"errors"
	"testing"
)

type testRepo struct {
	orders   []Order
	revenues []RevenueRecord

	failRevenue bool
}

func (r *testRepo) CreateOrder(ctx context.Context, o Order) error {
	r.orders = append(r.orders, o)
	return nil
}

func (r *testRepo) CreateRevenue(ctx context.Context, rec RevenueRecord) error {
	if r.failRevenue {
		return errors.New("repo: revenue write failed")
	}
	r.revenues = append(r.revenues, rec)
	return nil
}

func (r *testRepo) ListByUser(ctx context.Context, userID string) ([]OrderWithRevenue, error) {
	out := make([]OrderWithRevenue, 0)
	for _, o := range r.orders {
		if o.UserID != userID {
			continue
		}
		out = append(out, r.join(o))
	}
	return out, nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]OrderWithRevenue, error) {
	out := make([]OrderWithRevenue, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, r.join(o))
	}
	return out, nil
}

func (r *testRepo) join(o Order) OrderWithRevenue {
	item := OrderWithRevenue{Order: o}
	for _, rec := range r.revenues {
		if rec.OrderID == o.ID {
			v := rec.Amount
			item.Revenue = &v
			break
		}
	}
	return item
}

func TestPay_CreatesOrderAndRevenuePair(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(DefaultCatalog(), repo)

	o, err := svc.Pay(context.Background(), "user-1", PaymentInput{
		ServiceType: "vaccine",
		ProductName: "Basic immunization package",
		Amount:      199,
	})
	if err != nil {
		t.Fatalf("pay: %v", err)
	}
	if len(repo.orders) != 1 || len(repo.revenues) != 1 {
		t.Fatalf("expected 1 order + 1 revenue, got %d/%d", len(repo.orders), len(repo.revenues))
	}

	rec := repo.revenues[0]
	if rec.OrderID != o.ID {
		t.Fatalf("revenue not linked to order: %q vs %q", rec.OrderID, o.ID)
	}
	if rec.Amount != o.Amount || rec.RevenueType != o.ServiceType {
		t.Fatalf("revenue mismatch: %+v vs %+v", rec, o)
	}
	if !rec.CreatedAt.Equal(o.CreatedAt) {
		t.Fatal("order and revenue must share the creation timestamp")
	}
}

func TestPay_Validation(t *testing.T) {
	svc := NewService(DefaultCatalog(), &testRepo{})

	cases := []PaymentInput{
		{ProductName: "x", Amount: 10},                      // sin tipo
		{ServiceType: "food", Amount: 10},                   // sin producto
		{ServiceType: "food", ProductName: "x"},             // sin monto
		{ServiceType: "food", ProductName: "x", Amount: -5}, // monto negativo
	}
	for i, in := range cases {
		if _, err := svc.Pay(context.Background(), "user-1", in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestPay_RevenueFailureFailsRequest(t *testing.T) {
	repo := &testRepo{failRevenue: true}
	svc := NewService(DefaultCatalog(), repo)

	_, err := svc.Pay(context.Background(), "user-1", PaymentInput{
		ServiceType: "food",
		ProductName: "Kitten food 2kg",
		Amount:      128,
	})
	if err == nil {
		t.Fatal("expected error when the revenue write fails")
	}
	// La orden ya quedó escrita: no hay transacción que la deshaga.
	if len(repo.orders) != 1 {
		t.Fatalf("expected the order to remain, got %d", len(repo.orders))
	}
}

func TestListByUser_RequiresUser(t *testing.T) {
	svc := NewService(DefaultCatalog(), &testRepo{})

	if _, err := svc.ListByUser(context.Background(), " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
