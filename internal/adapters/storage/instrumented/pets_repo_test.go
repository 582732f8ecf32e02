package instrumented

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-demo-api/internal/adapters/storage/memory"
	"pet-demo-api/internal/platform/metrics"
)

func TestPetRepo_TracksStoredGauge(t *testing.T) {
	ctx := context.Background()
	repo := NewPetRepo(ctx, memory.NewPetRepo())
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PetsStored))

	fido, err := repo.Create(ctx, "fido", "dog")
	require.NoError(t, err)
	_, err = repo.Create(ctx, "kitty", "cat")
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.PetsStored))

	require.NoError(t, repo.Delete(ctx, fido.ID))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PetsStored))

	require.NoError(t, repo.DeleteAll(ctx))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PetsStored))
}
