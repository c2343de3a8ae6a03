package orgcontext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ingenimax/orgcontext-go/pkg/directory"
	"github.com/Ingenimax/orgcontext-go/pkg/interfaces"
)

func TestNewEngineWithStore(t *testing.T) {
	store := directory.NewInMemory()
	store.AddPerson(&interfaces.Person{ID: "p1", Name: "Michael Chen", Department: "Engineering"})

	engine, err := NewEngine(WithStore(store))
	require.NoError(t, err)

	result, err := engine.BuildContext(context.Background(), "Tell me about Michael Chen")
	require.NoError(t, err)

	require.Len(t, result.People, 1)
	assert.Equal(t, "Michael Chen", result.People[0].Name)
}

func TestNewEngineDefaultsToMemoryBackend(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)

	result, err := engine.BuildContext(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Empty(t, result.People)
}

func TestInvalidateCache(t *testing.T) {
	source := directory.NewInMemory()
	engine, err := NewEngine(WithStore(directory.NewCached(source)))
	require.NoError(t, err)

	// First read populates the cache before the person exists.
	_, err = engine.BuildContext(context.Background(), "Tell me about Michael Chen")
	require.NoError(t, err)

	source.AddPerson(&interfaces.Person{ID: "p1", Name: "Michael Chen"})
	require.NoError(t, engine.InvalidateCache(context.Background()))

	result, err := engine.BuildContext(context.Background(), "Tell me about Michael Chen")
	require.NoError(t, err)
	assert.Len(t, result.People, 1)
}

func TestInvalidateCacheWithoutCache(t *testing.T) {
	engine, err := NewEngine(WithStore(directory.NewInMemory()))
	require.NoError(t, err)

	// A store without a cache layer makes invalidation a no-op.
	assert.NoError(t, engine.InvalidateCache(context.Background()))
}
