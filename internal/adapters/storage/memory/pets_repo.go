package memory

import (
	"context"
	"sync"

	"pet-demo-api/internal/domain/pets"
)

// petRepo guarda las mascotas en memoria.
// Un único lock cubre el contador de IDs, el mapa y el orden de inserción.
type petRepo struct {
	mu     sync.RWMutex
	lastID int64
	byID   map[int64]pets.Pet
	order  []int64
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID: make(map[int64]pets.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, name, kind string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// lastID nunca baja, ni con Delete ni con DeleteAll
	r.lastID++
	p := pets.Pet{ID: r.lastID, Name: name, Kind: kind}

	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *petRepo) Update(ctx context.Context, id int64, name, kind string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	p.Name = name
	p.Kind = kind
	r.byID[id] = p
	return p, nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.filter(func(pets.Pet) bool { return true }), nil
}

// ListByKind compara exacto (case-sensitive).
func (r *petRepo) ListByKind(ctx context.Context, kind string) ([]pets.Pet, error) {
	return r.filter(func(p pets.Pet) bool { return p.Kind == kind }), nil
}

func (r *petRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *petRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[int64]pets.Pet)
	r.order = nil
	return nil
}

func (r *petRepo) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}

// filter recorre en orden de inserción; siempre devuelve slice no-nil
// para que el JSON sea [] y no null.
func (r *petRepo) filter(keep func(pets.Pet) bool) []pets.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
