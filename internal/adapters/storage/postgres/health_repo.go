package postgres

import (
	"context"
	"database/sql"
	"errors"

	"stray-adoption/internal/domain/health"
)

type HealthRepo struct {
	db *sql.DB
}

func NewHealthRepo(db *sql.DB) *HealthRepo {
	return &HealthRepo{db: db}
}

func (r *HealthRepo) Create(ctx context.Context, rec health.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO health_records (id, animal_id, vaccinated, neutered, dewormed, notes, updated_by, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		rec.ID, rec.AnimalID,
		rec.Vaccinated, rec.Neutered, rec.Dewormed,
		rec.Notes, rec.UpdatedBy, rec.UpdatedAt,
	)
	return err
}

func (r *HealthRepo) LatestByAnimal(ctx context.Context, animalID string) (health.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, animal_id, vaccinated, neutered, dewormed, notes, updated_by, updated_at
		FROM health_records
		WHERE animal_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, animalID)

	var rec health.Record
	if err := row.Scan(
		&rec.ID, &rec.AnimalID,
		&rec.Vaccinated, &rec.Neutered, &rec.Dewormed,
		&rec.Notes, &rec.UpdatedBy, &rec.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return health.Record{}, health.ErrNoRecord
		}
		return health.Record{}, err
	}
	return rec, nil
}
