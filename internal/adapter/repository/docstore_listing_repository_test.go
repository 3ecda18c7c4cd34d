package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	apperrors "estatehub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListing(t *testing.T, store *docstore.MemoryStore, id string, mutate func(*entity.Listing)) *entity.Listing {
	t.Helper()

	l := &entity.Listing{
		ID:       id,
		Title:    "Test listing " + id,
		Category: entity.CategoryApartment,
		Kind:     entity.KindSale,
		Price:    5000000,
		Location: entity.ListingLocation{
			Country: "India",
			State:   "Telangana",
			City:    "Hyderabad",
		},
		Bedrooms: 2,
		IsActive: true,
		PostedAt: time.Now(),
	}
	if mutate != nil {
		mutate(l)
	}

	err := store.Collection("listings").Set(context.Background(), id, encodeListing(l))
	require.NoError(t, err)
	return l
}

func listingIDs(listings []*entity.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}

func TestListFiltersAndExcludesInactive(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seedListing(t, store, "villa-1", func(l *entity.Listing) {
		l.Category = entity.CategoryVilla
		l.PostedAt = base.Add(3 * time.Hour)
	})
	seedListing(t, store, "villa-2", func(l *entity.Listing) {
		l.Category = entity.CategoryVilla
		l.IsActive = false
		l.PostedAt = base.Add(2 * time.Hour)
	})
	seedListing(t, store, "apartment-1", func(l *entity.Listing) {
		l.PostedAt = base.Add(1 * time.Hour)
	})
	seedListing(t, store, "villa-rented", func(l *entity.Listing) {
		l.Category = entity.CategoryVilla
		l.Kind = entity.KindRent
		l.PostedAt = base
	})

	listings, _, err := repo.List(context.Background(), repository.ListingFilter{
		Kind:       entity.KindSale,
		Categories: []string{entity.CategoryVilla},
	}, 10, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"villa-1"}, listingIDs(listings))
}

func TestListFirstPageIsIdempotent(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c", "d"} {
		seedListing(t, store, id, func(l *entity.Listing) {
			l.PostedAt = base.Add(time.Duration(i) * time.Hour)
		})
	}

	first, cursor1, err := repo.List(context.Background(), repository.ListingFilter{}, 2, "")
	require.NoError(t, err)
	second, cursor2, err := repo.List(context.Background(), repository.ListingFilter{}, 2, "")
	require.NoError(t, err)

	assert.Equal(t, listingIDs(first), listingIDs(second))
	assert.Equal(t, cursor1, cursor2)
	assert.Equal(t, []string{"d", "c"}, listingIDs(first))
}

func TestListSortsByPrice(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	prices := map[string]float64{"cheap": 2000000, "mid": 5000000, "dear": 9000000}
	i := 0
	for id, price := range prices {
		offset := time.Duration(i) * time.Hour
		p := price
		seedListing(t, store, id, func(l *entity.Listing) {
			l.Price = p
			l.PostedAt = base.Add(offset)
		})
		i++
	}

	asc, _, err := repo.List(context.Background(), repository.ListingFilter{Sort: entity.SortPriceLow}, 10, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"cheap", "mid", "dear"}, listingIDs(asc))

	desc, _, err := repo.List(context.Background(), repository.ListingFilter{Sort: entity.SortPriceHigh}, 10, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"dear", "mid", "cheap"}, listingIDs(desc))
}

func TestListDegradesWhenIndexMissing(t *testing.T) {
	store := docstore.NewMemoryStore()
	store.MaxIndexedFilters = 1
	repo := NewDocstoreListingRepository(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	seedListing(t, store, "newest", func(l *entity.Listing) {
		l.PostedAt = base.Add(2 * time.Hour)
	})
	seedListing(t, store, "hidden", func(l *entity.Listing) {
		l.IsActive = false
		l.PostedAt = base.Add(1 * time.Hour)
	})
	seedListing(t, store, "oldest", func(l *entity.Listing) {
		l.PostedAt = base
	})

	// Two field filters plus the order clause exceed the single "index".
	listings, _, err := repo.List(context.Background(), repository.ListingFilter{
		Kind: entity.KindSale,
		City: "Hyderabad",
	}, 10, "")

	require.NoError(t, err)
	assert.Equal(t, []string{"newest", "oldest"}, listingIDs(listings))
}

func TestListReturnsGenericFailures(t *testing.T) {
	store := docstore.NewMemoryStore()
	store.FailNext = errors.New("deadline exceeded")
	repo := NewDocstoreListingRepository(store)

	_, _, err := repo.List(context.Background(), repository.ListingFilter{}, 10, "")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "SERVICE_UNAVAILABLE"))
}

// The cursor tracks the last raw fetched document, not the last one shown.
// When inactive records are dropped in memory, listings past the raw window
// are skipped on the next page. This pins that behavior so a change to the
// cursor scheme shows up as a test failure rather than a silent shift.
func TestListCursorSkipsPastRawWindow(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Six listings, newest first: l1 l2 l3 l4 l5 l6. l2 and l3 inactive.
	for i, id := range []string{"l1", "l2", "l3", "l4", "l5", "l6"} {
		offset := time.Duration(i) * time.Hour
		inactive := id == "l2" || id == "l3"
		seedListing(t, store, id, func(l *entity.Listing) {
			l.PostedAt = base.Add(-offset)
			l.IsActive = !inactive
		})
	}

	page1, cursor, err := repo.List(context.Background(), repository.ListingFilter{}, 2, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l4"}, listingIDs(page1))
	assert.Equal(t, "l6", cursor)

	page2, _, err := repo.List(context.Background(), repository.ListingFilter{}, 2, cursor)
	require.NoError(t, err)
	assert.Empty(t, page2)
}

func TestFeaturedHonorsFlagAndCount(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, id := range []string{"f1", "plain-1", "f2", "plain-2", "plain-3"} {
		offset := time.Duration(i) * time.Hour
		featured := id == "f1" || id == "f2"
		seedListing(t, store, id, func(l *entity.Listing) {
			l.PostedAt = base.Add(-offset)
			l.IsFeatured = featured
		})
	}

	listings, err := repo.Featured(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"f1", "f2"}, listingIDs(listings))
}

func TestLegacyDocumentWithoutActiveFlagIsActive(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)

	data := map[string]interface{}{
		"title":    "Legacy listing",
		"category": entity.CategoryApartment,
		"kind":     entity.KindSale,
		"price":    3000000.0,
		"postedAt": time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.Collection("listings").Set(context.Background(), "legacy", data))

	listings, _, err := repo.List(context.Background(), repository.ListingFilter{}, 10, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"legacy"}, listingIDs(listings))
	assert.True(t, listings[0].IsActive)
}

func TestIncrementViewsIsAtomic(t *testing.T) {
	store := docstore.NewMemoryStore()
	repo := NewDocstoreListingRepository(store)

	seedListing(t, store, "busy", nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.IncrementViews(context.Background(), "busy"))
	}

	listing, err := repo.GetByID(context.Background(), "busy")
	require.NoError(t, err)
	assert.Equal(t, int64(3), listing.Views)
}
