package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promtlearn/backend/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProgressStore()

	state := models.NewProgressState()
	state.MarkCompleted(1)
	state.MarkCompleted(3)
	last := 3
	state.LastAccessedLesson = &last
	state.FullAccessPurchased = true
	state.LastUpdated = time.Now()

	require.NoError(t, store.Save(ctx, 7, state))

	loaded, err := store.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.CompletedCount())
	assert.True(t, loaded.IsLessonCompleted(3))
	require.NotNil(t, loaded.LastAccessedLesson)
	assert.Equal(t, 3, *loaded.LastAccessedLesson)
	assert.True(t, loaded.FullAccessPurchased)

	// The loaded state is a copy: mutating it must not leak back.
	loaded.MarkCompleted(5)
	again, err := store.Load(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, again.CompletedCount())
}

func TestMemoryStoreMissingKey(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProgressStore()

	_, err := store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProgressStore()

	require.NoError(t, store.Save(ctx, 1, models.NewProgressState()))
	require.NoError(t, store.Delete(ctx, 1))

	_, err := store.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, 2))
}
