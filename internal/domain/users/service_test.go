package users

import (
	"context"
	"errors"
	"testing"

	"stray-adoption/internal/ports/auth"
)

type testRepo struct {
	byID       map[string]User
	byUsername map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{
		byID:       map[string]User{},
		byUsername: map[string]User{},
	}
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	if _, ok := r.byUsername[u.Username]; ok {
		return errors.New("repo: username taken")
	}
	r.byID[u.ID] = u
	r.byUsername[u.Username] = u
	return nil
}

func (r *testRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "ana", "secret", auth.RoleUser)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.PasswordHash == "secret" || u.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Register(context.Background(), "ana", "secret", auth.Role("root")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), "ana", "secret", auth.RoleUser); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "ana", "secret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.Username != "ana" {
		t.Fatalf("expected ana, got %q", u.Username)
	}

	if _, err := svc.Authenticate(context.Background(), "ana", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on bad password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on unknown user, got %v", err)
	}
}

func TestEnsureSeedAccounts_Idempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	if err := svc.EnsureSeedAccounts(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	admin, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin seed missing: %v", err)
	}
	if admin.Role != auth.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}

	// Segunda pasada no pisa ni duplica.
	if err := svc.EnsureSeedAccounts(context.Background()); err != nil {
		t.Fatalf("second seed: %v", err)
	}
	again, _ := repo.GetByUsername(context.Background(), "admin")
	if again.ID != admin.ID {
		t.Fatal("seed must not replace an existing account")
	}

	if _, err := repo.GetByUsername(context.Background(), "registrar"); err != nil {
		t.Fatalf("registrar seed missing: %v", err)
	}
	if _, err := repo.GetByUsername(context.Background(), "user"); err != nil {
		t.Fatalf("user seed missing: %v", err)
	}
}

func TestUsernameOf(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), "ana", "secret", auth.RoleUser)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	name, err := svc.UsernameOf(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("username of: %v", err)
	}
	if name != "ana" {
		t.Fatalf("expected ana, got %q", name)
	}
}
