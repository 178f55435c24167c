package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"stray-adoption/internal/domain/adoptions"
	"stray-adoption/internal/domain/animals"
	"stray-adoption/internal/domain/users"
)

func newMock(t *testing.T) (*UsersRepo, *AnimalsRepo, *AdoptionsRepo, *BillingRepo, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewUsersRepo(db), NewAnimalsRepo(db), NewAdoptionsRepo(db), NewBillingRepo(db), mock
}

func checkMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestUsersRepo_GetByUsername(t *testing.T) {
	usersRepo, _, _, _, mock := newMock(t)

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+)\s+FROM users\s+WHERE username = \$1`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "password_hash", "role", "created_at"},
		).AddRow("u1", "admin", "$2a$10$hash", "admin", created))

	u, err := usersRepo.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.ID != "u1" || string(u.Role) != "admin" {
		t.Fatalf("unexpected user: %+v", u)
	}
	checkMet(t, mock)
}

func TestUsersRepo_GetByUsername_NotFound(t *testing.T) {
	usersRepo, _, _, _, mock := newMock(t)

	mock.ExpectQuery(`SELECT (.+)\s+FROM users\s+WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "username", "password_hash", "role", "created_at"},
		))

	if _, err := usersRepo.GetByUsername(context.Background(), "ghost"); !errors.Is(err, users.ErrNotFound) {
		t.Fatalf("expected users.ErrNotFound, got %v", err)
	}
	checkMet(t, mock)
}

func TestAnimalsRepo_UpdateStatus(t *testing.T) {
	_, animalsRepo, _, _, mock := newMock(t)

	mock.ExpectExec(`UPDATE animals SET status = \$2 WHERE id = \$1`).
		WithArgs("a1", "adopted").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := animalsRepo.UpdateStatus(context.Background(), "a1", animals.StatusAdopted); err != nil {
		t.Fatalf("update: %v", err)
	}
	checkMet(t, mock)
}

func TestAnimalsRepo_UpdateStatus_NotFound(t *testing.T) {
	_, animalsRepo, _, _, mock := newMock(t)

	mock.ExpectExec(`UPDATE animals SET status = \$2 WHERE id = \$1`).
		WithArgs("ghost", "published").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := animalsRepo.UpdateStatus(context.Background(), "ghost", animals.StatusPublished); !errors.Is(err, animals.ErrNotFound) {
		t.Fatalf("expected animals.ErrNotFound, got %v", err)
	}
	checkMet(t, mock)
}

func TestAdoptionsRepo_GetByID_NullReviewFields(t *testing.T) {
	_, _, adoptionsRepo, _, mock := newMock(t)

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT (.+)\s+FROM adoption_applications\s+WHERE id = \$1`).
		WithArgs("app-1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "animal_id", "user_id", "contact", "reason",
			"status", "reviewed_by", "created_at", "reviewed_at",
		}).AddRow("app-1", "a1", "u1", "555", "", "submitted", nil, created, nil))

	app, err := adoptionsRepo.GetByID(context.Background(), "app-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if app.Status != adoptions.StatusSubmitted {
		t.Fatalf("expected submitted, got %s", app.Status)
	}
	if app.ReviewedBy != nil || app.ReviewedAt != nil {
		t.Fatalf("expected nil review fields, got %+v", app)
	}
	checkMet(t, mock)
}

func TestAdoptionsRepo_CountSubmittedByAnimal(t *testing.T) {
	_, _, adoptionsRepo, _, mock := newMock(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)\s+FROM adoption_applications\s+WHERE animal_id = \$1 AND status = \$2`).
		WithArgs("a1", "submitted").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	n, err := adoptionsRepo.CountSubmittedByAnimal(context.Background(), "a1")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2, got %d", n)
	}
	checkMet(t, mock)
}

func TestAdoptionsRepo_UpdateReview_NotFound(t *testing.T) {
	_, _, adoptionsRepo, _, mock := newMock(t)

	at := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	mock.ExpectExec(`UPDATE adoption_applications\s+SET status = \$2, reviewed_by = \$3, reviewed_at = \$4\s+WHERE id = \$1`).
		WithArgs("ghost", "rejected", "admin-1", at).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := adoptionsRepo.UpdateReview(context.Background(), "ghost", adoptions.StatusRejected, "admin-1", at)
	if !errors.Is(err, adoptions.ErrNotFound) {
		t.Fatalf("expected adoptions.ErrNotFound, got %v", err)
	}
	checkMet(t, mock)
}

func TestBillingRepo_ListByUser_NullRevenue(t *testing.T) {
	_, _, _, billingRepo, mock := newMock(t)

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT o\.id, (.+)\s+r\.amount AS revenue\s+FROM orders o\s+LEFT JOIN revenue_records r ON r\.order_id = o\.id\s+WHERE o\.user_id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "service_type", "product_name", "amount", "created_at", "revenue",
		}).
			AddRow("o1", "u1", "vaccine", "Basic immunization package", 199.0, created, 199.0).
			AddRow("o2", "u1", "food", "Kitten food 2kg", 128.0, created, nil))

	items, err := billingRepo.ListByUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(items))
	}
	if items[0].Revenue == nil || *items[0].Revenue != 199 {
		t.Fatalf("expected revenue 199, got %+v", items[0])
	}
	if items[1].Revenue != nil {
		t.Fatalf("expected nil revenue, got %+v", items[1])
	}
	checkMet(t, mock)
}
