package pets

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List devuelve todas las mascotas, o solo las de kind si viene no vacío.
func (s *Service) List(ctx context.Context, kind string) ([]Pet, error) {
	if kind == "" {
		return s.repo.List(ctx)
	}
	return s.repo.ListByKind(ctx, kind)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// Create valida antes de tocar el store: un payload inválido nunca se persiste.
func (s *Service) Create(ctx context.Context, in PetRequest) (Pet, error) {
	if err := in.Validate(); err != nil {
		return Pet{}, err
	}
	name, kind := in.Values()
	return s.repo.Create(ctx, name, kind)
}

// Update reemplaza name y kind completos (PUT). El ID no cambia.
func (s *Service) Update(ctx context.Context, id int64, in PetRequest) (Pet, error) {
	if err := in.Validate(); err != nil {
		return Pet{}, err
	}
	name, kind := in.Values()
	return s.repo.Update(ctx, id, name, kind)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// DemoPets son las mascotas que inserta LoadDemo.
var DemoPets = []Pet{
	{Name: "fido", Kind: KindDog},
	{Name: "kitty", Kind: KindCat},
}

// LoadDemo inserta las mascotas de DemoPets con IDs nuevos.
func (s *Service) LoadDemo(ctx context.Context) ([]Pet, error) {
	out := make([]Pet, 0, len(DemoPets))
	for _, d := range DemoPets {
		p, err := s.repo.Create(ctx, d.Name, d.Kind)
		if err != nil {
			return out, fmt.Errorf("load demo pet %q: %w", d.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}
