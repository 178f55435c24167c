package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"stray-adoption/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `id, name, species, sex, age, status, foster_type, description, location, created_by, created_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)
	`,
		a.ID, a.Name, a.Species, a.Sex, a.Age,
		string(a.Status), a.FosterType, a.Description, a.Location,
		a.CreatedBy, a.CreatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = ?
	`, id)

	a, err := scanAnimal(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, onlyPublished bool) ([]animals.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals ORDER BY created_at DESC`
	args := []any{}
	if onlyPublished {
		query = `SELECT ` + animalColumns + ` FROM animals WHERE status = ? ORDER BY created_at DESC`
		args = append(args, string(animals.StatusPublished))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) UpdateStatus(ctx context.Context, id string, st animals.Status) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals SET status = ? WHERE id = ?
	`, string(st), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func scanAnimal(scan func(dest ...any) error) (animals.Animal, error) {
	var a animals.Animal
	var status string
	if err := scan(
		&a.ID, &a.Name, &a.Species, &a.Sex, &a.Age,
		&status, &a.FosterType, &a.Description, &a.Location,
		&a.CreatedBy, &a.CreatedAt,
	); err != nil {
		return animals.Animal{}, err
	}
	a.Status = animals.Status(status)
	return a, nil
}
