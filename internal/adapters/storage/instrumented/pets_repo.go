// Package instrumented decora un pets.Repository para mantener
// el gauge petdemo_pets_stored al día tras cada mutación.
package instrumented

import (
	"context"

	"pet-demo-api/internal/domain/pets"
	"pet-demo-api/internal/platform/metrics"
)

type PetRepo struct {
	pets.Repository
}

// NewPetRepo envuelve next y publica el conteo inicial.
func NewPetRepo(ctx context.Context, next pets.Repository) *PetRepo {
	r := &PetRepo{Repository: next}
	r.refresh(ctx)
	return r
}

func (r *PetRepo) Create(ctx context.Context, name, kind string) (pets.Pet, error) {
	p, err := r.Repository.Create(ctx, name, kind)
	if err == nil {
		r.refresh(ctx)
	}
	return p, err
}

func (r *PetRepo) Delete(ctx context.Context, id int64) error {
	err := r.Repository.Delete(ctx, id)
	if err == nil {
		r.refresh(ctx)
	}
	return err
}

func (r *PetRepo) DeleteAll(ctx context.Context) error {
	err := r.Repository.DeleteAll(ctx)
	if err == nil {
		r.refresh(ctx)
	}
	return err
}

// refresh es best-effort: un error de Count no debe romper la mutación.
func (r *PetRepo) refresh(ctx context.Context) {
	if n, err := r.Repository.Count(ctx); err == nil {
		metrics.PetsStored.Set(float64(n))
	}
}
