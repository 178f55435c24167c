package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"stray-adoption/internal/domain/adoptions"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const applicationColumns = `id, animal_id, user_id, contact, reason, status, reviewed_by, created_at, reviewed_at`

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Application) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoption_applications (`+applicationColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID, a.AnimalID, a.UserID, a.Contact, a.Reason,
		string(a.Status), toNullString(a.ReviewedBy), a.CreatedAt, toNullTime(a.ReviewedAt),
	)
	return err
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Application, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM adoption_applications
		WHERE id = $1
	`, id)

	a, err := scanApplication(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Application{}, adoptions.ErrNotFound
		}
		return adoptions.Application{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) ListAll(ctx context.Context) ([]adoptions.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM adoption_applications
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *AdoptionsRepo) ListByUser(ctx context.Context, userID string) ([]adoptions.Application, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM adoption_applications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *AdoptionsRepo) UpdateReview(ctx context.Context, id string, st adoptions.Status, reviewedBy string, at time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoption_applications
		SET status = $2, reviewed_by = $3, reviewed_at = $4
		WHERE id = $1
	`, id, string(st), reviewedBy, at)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) CountSubmittedByAnimal(ctx context.Context, animalID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM adoption_applications
		WHERE animal_id = $1 AND status = $2
	`, animalID, string(adoptions.StatusSubmitted)).Scan(&n)
	return n, err
}

func collectApplications(rows *sql.Rows) ([]adoptions.Application, error) {
	out := make([]adoptions.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanApplication(scan func(dest ...any) error) (adoptions.Application, error) {
	var a adoptions.Application
	var status string
	var reviewedBy sql.NullString
	var reviewedAt sql.NullTime

	if err := scan(
		&a.ID, &a.AnimalID, &a.UserID, &a.Contact, &a.Reason,
		&status, &reviewedBy, &a.CreatedAt, &reviewedAt,
	); err != nil {
		return adoptions.Application{}, err
	}

	a.Status = adoptions.Status(status)
	if reviewedBy.Valid {
		s := reviewedBy.String
		a.ReviewedBy = &s
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		a.ReviewedAt = &t
	}
	return a, nil
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
