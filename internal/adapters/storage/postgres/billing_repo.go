package postgres

import (
	"context"
	"database/sql"

	"stray-adoption/internal/domain/billing"
)

type BillingRepo struct {
	db *sql.DB
}

func NewBillingRepo(db *sql.DB) *BillingRepo {
	return &BillingRepo{db: db}
}

func (r *BillingRepo) CreateOrder(ctx context.Context, o billing.Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, service_type, product_name, amount, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		o.ID, o.UserID, o.ServiceType, o.ProductName, o.Amount, o.CreatedAt,
	)
	return err
}

func (r *BillingRepo) CreateRevenue(ctx context.Context, rec billing.RevenueRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO revenue_records (id, order_id, revenue_type, amount, created_at)
		VALUES ($1,$2,$3,$4,$5)
	`,
		rec.ID, rec.OrderID, rec.RevenueType, rec.Amount, rec.CreatedAt,
	)
	return err
}

const orderWithRevenueQuery = `
	SELECT o.id, o.user_id, o.service_type, o.product_name, o.amount, o.created_at,
	       r.amount AS revenue
	FROM orders o
	LEFT JOIN revenue_records r ON r.order_id = o.id
`

func (r *BillingRepo) ListByUser(ctx context.Context, userID string) ([]billing.OrderWithRevenue, error) {
	rows, err := r.db.QueryContext(ctx,
		orderWithRevenueQuery+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *BillingRepo) ListAll(ctx context.Context) ([]billing.OrderWithRevenue, error) {
	rows, err := r.db.QueryContext(ctx,
		orderWithRevenueQuery+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]billing.OrderWithRevenue, error) {
	out := make([]billing.OrderWithRevenue, 0)
	for rows.Next() {
		var item billing.OrderWithRevenue
		var revenue sql.NullFloat64
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.ServiceType, &item.ProductName,
			&item.Amount, &item.CreatedAt, &revenue,
		); err != nil {
			return nil, err
		}
		if revenue.Valid {
			v := revenue.Float64
			item.Revenue = &v
		}
		out = append(out, item)
	}
	return out, rows.Err()
}
