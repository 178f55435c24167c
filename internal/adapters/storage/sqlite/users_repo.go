package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"stray-adoption/internal/domain/users"
	"stray-adoption/internal/ports/auth"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, role, created_at)
		VALUES (?,?,?,?,?)
	`,
		u.ID, u.Username, u.PasswordHash, string(u.Role), u.CreatedAt,
	)
	return err
}

func (r *UsersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE username = ?
	`, username)
	return scanUser(row)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, created_at
		FROM users
		WHERE id = ?
	`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (users.User, error) {
	var u users.User
	var role string
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &role, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	u.Role = auth.Role(role)
	return u, nil
}
