package pets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	lastID  int64
	items   []Pet
	creates int
	failOn  string
}

func (r *testRepo) List(ctx context.Context) ([]Pet, error) {
	return append([]Pet{}, r.items...), nil
}

func (r *testRepo) ListByKind(ctx context.Context, kind string) ([]Pet, error) {
	out := make([]Pet, 0)
	for _, p := range r.items {
		if p.Kind == kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) Create(ctx context.Context, name, kind string) (Pet, error) {
	r.creates++
	if name == r.failOn {
		return Pet{}, errors.New("repo: boom")
	}
	r.lastID++
	p := Pet{ID: r.lastID, Name: name, Kind: kind}
	r.items = append(r.items, p)
	return p, nil
}

func (r *testRepo) Update(ctx context.Context, id int64, name, kind string) (Pet, error) {
	for i, p := range r.items {
		if p.ID == id {
			r.items[i] = Pet{ID: id, Name: name, Kind: kind}
			return r.items[i], nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) Delete(ctx context.Context, id int64) error {
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	r.items = nil
	return nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) {
	return len(r.items), nil
}

func str(s string) *string { return &s }

// -------------------------
// Tests
// -------------------------

func TestService_Create_TrimsAndStores(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	p, err := svc.Create(context.Background(), PetRequest{Name: str("  sammy "), Kind: str("snake")})
	require.NoError(t, err)
	assert.Equal(t, Pet{ID: 1, Name: "sammy", Kind: "snake"}, p)
}

func TestService_Create_CategoryAlias(t *testing.T) {
	svc := NewService(&testRepo{})

	p, err := svc.Create(context.Background(), PetRequest{Name: str("sammy"), Category: str("snake")})
	require.NoError(t, err)
	assert.Equal(t, "snake", p.Kind)
}

func TestService_Create_InvalidNeverReachesRepo(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), PetRequest{Kind: str("dog")})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, repo.creates)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	repo := &testRepo{}
	svc := NewService(repo)

	kitty, err := svc.Create(ctx, PetRequest{Name: str("kitty"), Kind: str("cat")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, kitty.ID, PetRequest{Name: str("kitty"), Kind: str("tabby")})
	require.NoError(t, err)
	assert.Equal(t, Pet{ID: kitty.ID, Name: "kitty", Kind: "tabby"}, updated)

	_, err = svc.Update(ctx, 99, PetRequest{Name: str("timothy"), Kind: str("mouse")})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, kitty.ID, PetRequest{Kind: str("dog")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_FiltersByKind(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{})

	_, err := svc.LoadDemo(ctx)
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	dogs, err := svc.List(ctx, "dog")
	require.NoError(t, err)
	require.Len(t, dogs, 1)
	assert.Equal(t, "fido", dogs[0].Name)
}

func TestService_LoadDemo(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{})

	created, err := svc.LoadDemo(ctx)
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "fido", created[0].Name)
	assert.Equal(t, KindDog, created[0].Kind)
	assert.Equal(t, "kitty", created[1].Name)
	assert.Equal(t, KindCat, created[1].Kind)
	assert.Greater(t, created[1].ID, created[0].ID)
}

func TestService_LoadDemo_WrapsRepoError(t *testing.T) {
	svc := NewService(&testRepo{failOn: "kitty"})

	created, err := svc.LoadDemo(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"kitty"`)
	assert.Len(t, created, 1)
}

func TestService_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc := NewService(&testRepo{})

	require.NoError(t, svc.Delete(ctx, 1))
	require.NoError(t, svc.Delete(ctx, 1))

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
