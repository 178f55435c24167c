package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"stray-adoption/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// ErrInvalidCredentials cubre usuario inexistente y password equivocado.
	// No se distingue hacia afuera cuál de los dos falló.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Register da de alta un usuario con password hasheado (bcrypt).
// Nunca se persiste el password plano.
func (s *Service) Register(ctx context.Context, username, password string, role auth.Role) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}
	if !role.OneOf(auth.RoleAdmin, auth.RoleRegistrar, auth.RoleUser) {
		return User{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate verifica username/password contra el hash persistido.
func (s *Service) Authenticate(ctx context.Context, username, password string) (User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// UsernameOf expone solo el username de un usuario.
// Lo consumen otros módulos vía interfaz propia para no importar este paquete.
func (s *Service) UsernameOf(ctx context.Context, userID string) (string, error) {
	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return u.Username, nil
}

// EnsureSeedAccounts garantiza las cuentas por defecto del sistema.
// Idempotente: nunca pisa un usuario existente.
func (s *Service) EnsureSeedAccounts(ctx context.Context) error {
	seeds := []struct {
		username string
		password string
		role     auth.Role
	}{
		{"admin", "admin123", auth.RoleAdmin},
		{"registrar", "reg123", auth.RoleRegistrar},
		{"user", "user123", auth.RoleUser},
	}

	for _, sd := range seeds {
		if _, err := s.repo.GetByUsername(ctx, sd.username); err == nil {
			continue
		}
		if _, err := s.Register(ctx, sd.username, sd.password, sd.role); err != nil {
			return err
		}
	}
	return nil
}
