package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

// ListingFilter describes the optional public search criteria. Zero values
// mean "no constraint".
type ListingFilter struct {
	Kind       string
	Categories []string
	City       string
	Bedrooms   []int
	Sort       string
}

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)

	// List returns one page of active listings matching the filter plus an
	// opaque cursor for the next page (empty when exhausted). The cursor
	// tracks the last raw fetched document, not the last returned one.
	List(ctx context.Context, filter ListingFilter, pageSize int, cursor string) ([]*entity.Listing, string, error)

	// ListAll is the administrative view: every listing regardless of the
	// active flag, newest first.
	ListAll(ctx context.Context, pageSize int, cursor string) ([]*entity.Listing, string, error)

	Featured(ctx context.Context, count int) ([]*entity.Listing, error)
	ByCategory(ctx context.Context, category string, count int) ([]*entity.Listing, error)

	Update(ctx context.Context, listing *entity.Listing) error
	Deactivate(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error

	IncrementViews(ctx context.Context, id string) error
	IncrementEnquiries(ctx context.Context, id string) error
}
