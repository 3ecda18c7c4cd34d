package usecase

import (
	"context"
	"testing"

	adapterrepo "estatehub/internal/adapter/repository"
	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	"estatehub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingUseCase(t *testing.T) *ListingUseCase {
	t.Helper()

	store := docstore.NewMemoryStore()
	return NewListingUseCase(adapterrepo.NewDocstoreListingRepository(store), 12)
}

func validListingInput() ListingInput {
	return ListingInput{
		Title:    "2BHK in Madhapur",
		Category: entity.CategoryApartment,
		Kind:     entity.KindSale,
		Price:    7500000,
		City:     "Hyderabad",
		Bedrooms: 2,
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	uc := newListingUseCase(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ListingInput)
	}{
		{"missing title", func(in *ListingInput) { in.Title = "" }},
		{"unknown category", func(in *ListingInput) { in.Category = "castle" }},
		{"unknown kind", func(in *ListingInput) { in.Kind = "lease" }},
		{"zero price", func(in *ListingInput) { in.Price = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validListingInput()
			tt.mutate(&input)
			_, err := uc.Create(ctx, input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, "BAD_REQUEST"))
		})
	}
}

func TestGetHidesInactiveListings(t *testing.T) {
	uc := newListingUseCase(t)
	ctx := context.Background()

	created, err := uc.Create(ctx, validListingInput())
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.NoError(t, uc.Deactivate(ctx, created.ID))

	_, err = uc.Get(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	// The admin path still sees it.
	admin, err := uc.GetAdmin(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, admin.IsActive)
}

func TestListRejectsInvalidQuery(t *testing.T) {
	uc := newListingUseCase(t)
	ctx := context.Background()

	_, _, err := uc.List(ctx, repository.ListingFilter{Sort: "cheapest"}, 0, "")
	require.Error(t, err)

	_, _, err = uc.List(ctx, repository.ListingFilter{Kind: "lease"}, 0, "")
	require.Error(t, err)

	_, _, err = uc.List(ctx, repository.ListingFilter{Categories: []string{"castle"}}, 0, "")
	require.Error(t, err)
}

func TestListAppliesDefaultPageSize(t *testing.T) {
	store := docstore.NewMemoryStore()
	uc := NewListingUseCase(adapterrepo.NewDocstoreListingRepository(store), 2)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := uc.Create(ctx, validListingInput())
		require.NoError(t, err)
	}

	listings, _, err := uc.List(ctx, repository.ListingFilter{}, 0, "")
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}

func TestDeleteUnknownListing(t *testing.T) {
	uc := newListingUseCase(t)

	err := uc.Delete(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
