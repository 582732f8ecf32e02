package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("pet not found")
)

// Repository es el store de mascotas.
// Create asigna el siguiente ID (monótono, nunca reutilizado).
// Delete es idempotente: borrar un ID inexistente no es error.
type Repository interface {
	List(ctx context.Context) ([]Pet, error)
	ListByKind(ctx context.Context, kind string) ([]Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	Create(ctx context.Context, name, kind string) (Pet, error)
	Update(ctx context.Context, id int64, name, kind string) (Pet, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
	Count(ctx context.Context) (int, error)
}
