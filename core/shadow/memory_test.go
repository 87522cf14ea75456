package shadow

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()
	doc, err := store.Get(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, doc)
}

func TestMemoryStore_UpdateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Update(ctx, "dev-1", Patch{Desired: map[string]any{"dsrdVrs": 1}})
	require.NoError(t, err)
	updated, err := store.Update(ctx, "dev-1", Patch{Reported: map[string]any{"rptdVrs": 1}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	doc, err := store.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, updated, doc)
	assert.Equal(t, 1.0, doc.State.Desired["dsrdVrs"])
	assert.Equal(t, 1.0, doc.State.Reported["rptdVrs"])

	// Returned documents are copies.
	doc.State.Desired["dsrdVrs"] = 99.0
	again, err := store.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, 1.0, again.State.Desired["dsrdVrs"])
}

func TestMemoryStore_Seed(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Seed("dev-1", map[string]any{"dsrdVrs": 3}, map[string]any{"env": "prod"}))
	assert.Equal(t, 1, store.Len())

	doc, err := store.Get(context.Background(), "dev-1")
	require.NoError(t, err)
	v, ok := doc.ReportedValue("env")
	assert.True(t, ok)
	assert.Equal(t, "prod", v)
}

func TestMemoryStore_ConcurrentUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, "dev-1", Patch{})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := store.Get(ctx, "dev-1")
	require.NoError(t, err)
	assert.Equal(t, int64(20), doc.Version)
}

func TestTriggerDelta(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Seed("dev-1", map[string]any{"lvl": 2}, map[string]any{"lvl": 1}))

	doc, token, err := TriggerDelta(ctx, store, "dev-1", "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, token, doc.ClientToken)
	assert.Equal(t, map[string]any{"lvl": 2.0}, doc.State.Delta)

	_, token, err = TriggerDelta(ctx, store, "dev-1", "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", token)

	_, _, err = TriggerDelta(ctx, store, "", "")
	assert.Error(t, err)
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(Config{Backend: BackendMemory}, nil, nil, "")
	require.NoError(t, err)
	assert.NotNil(t, store)

	_, err = NewStore(Config{Backend: BackendDatabase}, nil, nil, "")
	assert.Error(t, err)

	_, err = NewStore(Config{Backend: BackendObject}, nil, nil, "")
	assert.Error(t, err)

	_, err = NewStore(Config{Backend: "etcd"}, nil, nil, "")
	assert.EqualError(t, err, "unknown shadow backend: etcd")
}
