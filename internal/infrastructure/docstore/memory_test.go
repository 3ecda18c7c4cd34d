package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCollectionRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	col := store.Collection("things")
	ctx := context.Background()

	require.NoError(t, col.Set(ctx, "a", map[string]interface{}{"name": "first"}))

	doc, err := col.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", doc.ID())
	assert.Equal(t, "first", doc.Data()["name"])

	_, err = col.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, col.Delete(ctx, "a"))
	_, err = col.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryQueryFiltersAndOrders(t *testing.T) {
	store := NewMemoryStore()
	col := store.Collection("things")
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, col.Set(ctx, "a", map[string]interface{}{"group": "x", "at": base.Add(1 * time.Hour)}))
	require.NoError(t, col.Set(ctx, "b", map[string]interface{}{"group": "y", "at": base.Add(2 * time.Hour)}))
	require.NoError(t, col.Set(ctx, "c", map[string]interface{}{"group": "x", "at": base.Add(3 * time.Hour)}))

	docs, err := col.Query().
		Where("group", "==", "x").
		OrderBy("at", Descending).
		Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "c", docs[0].ID())
	assert.Equal(t, "a", docs[1].ID())
}

func TestMemoryQueryInOperatorAndDottedPath(t *testing.T) {
	store := NewMemoryStore()
	col := store.Collection("things")
	ctx := context.Background()

	require.NoError(t, col.Set(ctx, "a", map[string]interface{}{
		"kind":     "sale",
		"location": map[string]interface{}{"city": "Hyderabad"},
	}))
	require.NoError(t, col.Set(ctx, "b", map[string]interface{}{
		"kind":     "rent",
		"location": map[string]interface{}{"city": "Chennai"},
	}))

	docs, err := col.Query().
		Where("kind", "in", []interface{}{"sale", "lease"}).
		Where("location.city", "==", "Hyderabad").
		Documents(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a", docs[0].ID())
}

func TestMemoryQueryCursorAndLimit(t *testing.T) {
	store := NewMemoryStore()
	col := store.Collection("things")
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, col.Set(ctx, id, map[string]interface{}{"at": base.Add(time.Duration(-i) * time.Hour)}))
	}

	page1, err := col.Query().OrderBy("at", Descending).Limit(2).Documents(ctx)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, "a", page1[0].ID())
	assert.Equal(t, "b", page1[1].ID())

	page2, err := col.Query().
		OrderBy("at", Descending).
		StartAfter(page1[1].ID()).
		Limit(2).
		Documents(ctx)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, "c", page2[0].ID())
	assert.Equal(t, "d", page2[1].ID())
}

func TestMemoryQueryReportsMissingIndex(t *testing.T) {
	store := NewMemoryStore()
	store.MaxIndexedFilters = 1
	col := store.Collection("things")
	ctx := context.Background()

	require.NoError(t, col.Set(ctx, "a", map[string]interface{}{"kind": "sale", "city": "Hyderabad", "at": time.Now()}))

	// One filter with an order clause is fine.
	_, err := col.Query().
		Where("kind", "==", "sale").
		OrderBy("at", Descending).
		Documents(ctx)
	require.NoError(t, err)

	// Two filters with an order clause exceed the configured indexes.
	_, err = col.Query().
		Where("kind", "==", "sale").
		Where("city", "==", "Hyderabad").
		OrderBy("at", Descending).
		Documents(ctx)
	assert.ErrorIs(t, err, ErrUnsupportedQuery)

	// Without the order clause the same filters are served.
	_, err = col.Query().
		Where("kind", "==", "sale").
		Where("city", "==", "Hyderabad").
		Documents(ctx)
	require.NoError(t, err)
}

func TestMemoryUpdateIncrementsAtomically(t *testing.T) {
	store := NewMemoryStore()
	col := store.Collection("things")
	ctx := context.Background()

	require.NoError(t, col.Set(ctx, "a", map[string]interface{}{"views": int64(5)}))
	require.NoError(t, col.Update(ctx, "a", []Update{Increment("views", 2)}))

	doc, err := col.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(7), doc.Data()["views"])

	assert.ErrorIs(t, col.Update(ctx, "missing", []Update{Increment("views", 1)}), ErrNotFound)
}
