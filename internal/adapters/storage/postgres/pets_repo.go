package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pet-demo-api/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, name, kind string) (pets.Pet, error) {
	p := pets.Pet{Name: name, Kind: kind}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (name, kind)
		VALUES ($1, $2)
		RETURNING id
	`, name, kind).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, fmt.Errorf("insert pet: %w", err)
	}
	return p, nil
}

func (r *PetsRepo) Update(ctx context.Context, id int64, name, kind string) (pets.Pet, error) {
	p := pets.Pet{ID: id}
	err := r.db.QueryRowContext(ctx, `
		UPDATE pets
		SET name = $2, kind = $3
		WHERE id = $1
		RETURNING name, kind
	`, id, name, kind).Scan(&p.Name, &p.Kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("update pet %d: %w", id, err)
	}
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	if id <= 0 {
		return pets.Pet{}, pets.ErrNotFound
	}

	var p pets.Pet
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, kind
		FROM pets
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Kind)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("get pet %d: %w", id, err)
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT id, name, kind
		FROM pets
		ORDER BY id ASC
	`)
}

func (r *PetsRepo) ListByKind(ctx context.Context, kind string) ([]pets.Pet, error) {
	return r.query(ctx, `
		SELECT id, name, kind
		FROM pets
		WHERE kind = $1
		ORDER BY id ASC
	`, kind)
}

// Delete es idempotente: 0 filas afectadas no es error.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete pet %d: %w", id, err)
	}
	return nil
}

// DeleteAll no usa TRUNCATE ... RESTART IDENTITY: la secuencia sigue avanzando.
func (r *PetsRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pets`); err != nil {
		return fmt.Errorf("delete all pets: %w", err)
	}
	return nil
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return n, nil
}

func (r *PetsRepo) query(ctx context.Context, q string, args ...any) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Name, &p.Kind); err != nil {
			return nil, fmt.Errorf("scan pet: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

var _ pets.Repository = (*PetsRepo)(nil)
