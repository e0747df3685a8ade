package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()

	runStoreContract(t, store, shortPause)
}

func TestMemoryStore_ReturnsIndependentCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	owner := uuid.New()

	data := sampleData()
	created, err := store.CreateDraft(ctx, owner, "Draft", data)
	require.NoError(t, err)

	data.Skills[0] = "mutated"
	created.Data.Skills[1] = "mutated"

	got, err := store.GetDraft(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, got.Data.Skills)
}

func TestMemoryStore_Timestamps(t *testing.T) {
	store := NewMemoryStore()
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store.now = func() time.Time { return clock }
	ctx := context.Background()
	owner := uuid.New()

	created, err := store.CreateDraft(ctx, owner, "Draft", sampleData())
	require.NoError(t, err)
	assert.Equal(t, clock, created.CreatedAt)

	clock = clock.Add(time.Hour)
	updated, err := store.UpdateDraft(ctx, owner, created.ID, "Draft v2", sampleData())
	require.NoError(t, err)
	assert.Equal(t, clock, updated.UpdatedAt)
	assert.Equal(t, clock.Add(-time.Hour), updated.CreatedAt)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	owner := uuid.New()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d, err := store.CreateDraft(ctx, owner, "Draft", sampleData())
			if assert.NoError(t, err) {
				_, err = store.ListDrafts(ctx, owner)
				assert.NoError(t, err)
				_, err = store.UpdateDraft(ctx, owner, d.ID, "Updated", sampleData())
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	drafts, err := store.ListDrafts(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, drafts, 20)
}
