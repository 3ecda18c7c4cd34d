package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	apperrors "estatehub/pkg/errors"
	"estatehub/pkg/logger"
)

const (
	listingsCollection = "listings"

	defaultPageSize = 12

	// overfetchFactor compensates for documents dropped by the in-memory
	// isActive filter after the indexed query returns.
	overfetchFactor = 3
)

type docstoreListingRepository struct {
	store docstore.Store
}

func NewDocstoreListingRepository(store docstore.Store) repository.ListingRepository {
	return &docstoreListingRepository{store: store}
}

func (r *docstoreListingRepository) col() docstore.Collection {
	return r.store.Collection(listingsCollection)
}

func (r *docstoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	col := r.col()
	if listing.ID == "" {
		listing.ID = col.NewID()
	}

	now := time.Now()
	if listing.PostedAt.IsZero() {
		listing.PostedAt = now
	}
	listing.UpdatedAt = now
	listing.Views = 0
	listing.Enquiries = 0

	if err := col.Set(ctx, listing.ID, encodeListing(listing)); err != nil {
		return apperrors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *docstoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.col().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.NotFound("Listing", err)
		}
		return nil, apperrors.Unavailable("Failed to get listing", err)
	}
	return decodeListing(doc)
}

// List runs the indexed query built from the filter's safe fields, degrades
// to the plainest query when the store reports a missing composite index,
// drops inactive records in memory, re-sorts when the client asked for a
// non-default order, and truncates to the page size. The returned cursor
// tracks the last raw fetched document, so pages after an in-memory drop can
// skip records; that trade-off is intentional and covered by tests.
func (r *docstoreListingRepository) List(ctx context.Context, filter repository.ListingFilter, pageSize int, cursor string) ([]*entity.Listing, string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	q := r.col().Query()
	if filter.Kind != "" {
		q = q.Where("kind", "==", filter.Kind)
	}
	if len(filter.Categories) > 0 {
		q = q.Where("category", "in", toInterfaces(filter.Categories))
	}
	if filter.City != "" {
		q = q.Where("location.city", "==", filter.City)
	}
	if len(filter.Bedrooms) > 0 {
		q = q.Where("bedrooms", "in", toInterfaceInts(filter.Bedrooms))
	}
	q = q.OrderBy("postedAt", docstore.Descending).Limit(pageSize * overfetchFactor)
	if cursor != "" {
		q = q.StartAfter(cursor)
	}

	docs, err := r.runWithFallback(ctx, q, pageSize, cursor)
	if err != nil {
		return nil, "", apperrors.Unavailable("Failed to load listings", err)
	}

	listings := decodeActiveListings(docs)
	sortListings(listings, filter.Sort)

	nextCursor := ""
	if len(docs) > 0 {
		nextCursor = docs[len(docs)-1].ID()
	}
	if len(listings) > pageSize {
		listings = listings[:pageSize]
	}
	return listings, nextCursor, nil
}

func (r *docstoreListingRepository) ListAll(ctx context.Context, pageSize int, cursor string) ([]*entity.Listing, string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	q := r.col().Query().OrderBy("postedAt", docstore.Descending).Limit(pageSize)
	if cursor != "" {
		q = q.StartAfter(cursor)
	}

	docs, err := q.Documents(ctx)
	if err != nil {
		return nil, "", apperrors.Unavailable("Failed to load listings", err)
	}

	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		listing, err := decodeListing(doc)
		if err != nil {
			logger.Warn("Skipping undecodable listing %s: %v", doc.ID(), err)
			continue
		}
		listings = append(listings, listing)
	}

	nextCursor := ""
	if len(docs) > 0 {
		nextCursor = docs[len(docs)-1].ID()
	}
	return listings, nextCursor, nil
}

func (r *docstoreListingRepository) Featured(ctx context.Context, count int) ([]*entity.Listing, error) {
	if count <= 0 {
		count = defaultPageSize
	}

	q := r.col().Query().
		Where("isFeatured", "==", true).
		OrderBy("postedAt", docstore.Descending).
		Limit(count * overfetchFactor)

	docs, err := r.runWithFallback(ctx, q, count*overfetchFactor, "")
	if err != nil {
		return nil, apperrors.Unavailable("Failed to load featured listings", err)
	}

	listings := make([]*entity.Listing, 0, count)
	for _, listing := range decodeActiveListings(docs) {
		if !listing.IsFeatured {
			continue
		}
		listings = append(listings, listing)
		if len(listings) == count {
			break
		}
	}
	return listings, nil
}

func (r *docstoreListingRepository) ByCategory(ctx context.Context, category string, count int) ([]*entity.Listing, error) {
	if count <= 0 {
		count = defaultPageSize
	}

	q := r.col().Query().
		Where("category", "==", category).
		OrderBy("postedAt", docstore.Descending).
		Limit(count * overfetchFactor)

	docs, err := r.runWithFallback(ctx, q, count*overfetchFactor, "")
	if err != nil {
		return nil, apperrors.Unavailable("Failed to load category listings", err)
	}

	listings := make([]*entity.Listing, 0, count)
	for _, listing := range decodeActiveListings(docs) {
		if listing.Category != category {
			continue
		}
		listings = append(listings, listing)
		if len(listings) == count {
			break
		}
	}
	return listings, nil
}

func (r *docstoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	if err := r.col().Set(ctx, listing.ID, encodeListing(listing)); err != nil {
		return apperrors.Internal("Failed to update listing", err)
	}
	return nil
}

func (r *docstoreListingRepository) Deactivate(ctx context.Context, id string) error {
	err := r.col().Update(ctx, id, []docstore.Update{
		{Path: "isActive", Value: false},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperrors.NotFound("Listing", err)
		}
		return apperrors.Internal("Failed to deactivate listing", err)
	}
	return nil
}

func (r *docstoreListingRepository) Delete(ctx context.Context, id string) error {
	if err := r.col().Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete listing", err)
	}
	return nil
}

func (r *docstoreListingRepository) IncrementViews(ctx context.Context, id string) error {
	err := r.col().Update(ctx, id, []docstore.Update{
		docstore.Increment("views", 1),
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return apperrors.Internal("Failed to increment listing views", err)
	}
	return nil
}

func (r *docstoreListingRepository) IncrementEnquiries(ctx context.Context, id string) error {
	err := r.col().Update(ctx, id, []docstore.Update{
		docstore.Increment("enquiries", 1),
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return apperrors.Internal("Failed to increment listing enquiries", err)
	}
	return nil
}

// runWithFallback executes the primary query and retries once with the
// degraded form (creation time descending, no field filters, one page) when
// the store cannot serve the composite filter/order combination. Any other
// failure is returned as-is.
func (r *docstoreListingRepository) runWithFallback(ctx context.Context, primary docstore.Query, fallbackLimit int, cursor string) ([]docstore.Document, error) {
	docs, err := primary.Documents(ctx)
	if err == nil {
		return docs, nil
	}
	if !errors.Is(err, docstore.ErrUnsupportedQuery) {
		return nil, err
	}

	logger.Warn("Listing query missing a composite index, degrading: %v", err)

	fallback := r.col().Query().
		OrderBy("postedAt", docstore.Descending).
		Limit(fallbackLimit)
	if cursor != "" {
		fallback = fallback.StartAfter(cursor)
	}
	return fallback.Documents(ctx)
}

// decodeActiveListings decodes raw documents, keeping only records whose
// isActive is not explicitly false. Undecodable documents are skipped.
func decodeActiveListings(docs []docstore.Document) []*entity.Listing {
	listings := make([]*entity.Listing, 0, len(docs))
	for _, doc := range docs {
		listing, err := decodeListing(doc)
		if err != nil {
			logger.Warn("Skipping undecodable listing %s: %v", doc.ID(), err)
			continue
		}
		if !listing.IsActive {
			continue
		}
		listings = append(listings, listing)
	}
	return listings
}

// sortListings applies the client-requested order in memory. "newest" (and
// the empty key) rely on the query's own postedAt ordering.
func sortListings(listings []*entity.Listing, sortKey string) {
	switch sortKey {
	case entity.SortPriceLow:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price < listings[j].Price
		})
	case entity.SortPriceHigh:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Price > listings[j].Price
		})
	case entity.SortPopular:
		sort.SliceStable(listings, func(i, j int) bool {
			return listings[i].Views > listings[j].Views
		})
	}
}

func encodeListing(l *entity.Listing) map[string]interface{} {
	return map[string]interface{}{
		"title":    l.Title,
		"category": l.Category,
		"kind":     l.Kind,
		"price":    l.Price,
		"location": map[string]interface{}{
			"country": l.Location.Country,
			"state":   l.Location.State,
			"city":    l.Location.City,
			"area":    l.Location.Area,
		},
		"bedrooms":           int64(l.Bedrooms),
		"bathrooms":          int64(l.Bathrooms),
		"areaValue":          l.AreaValue,
		"areaUnit":           l.AreaUnit,
		"furnishing":         l.Furnishing,
		"constructionStatus": l.ConstructionStatus,
		"amenities":          l.Amenities,
		"images":             l.Images,
		"description":        l.Description,
		"ownerName":          l.OwnerName,
		"ownerPhone":         l.OwnerPhone,
		"ownerEmail":         l.OwnerEmail,
		"isActive":           l.IsActive,
		"isFeatured":         l.IsFeatured,
		"isVerified":         l.IsVerified,
		"views":              l.Views,
		"enquiries":          l.Enquiries,
		"postedAt":           l.PostedAt,
		"updatedAt":          l.UpdatedAt,
	}
}

func decodeListing(doc docstore.Document) (*entity.Listing, error) {
	m := doc.Data()
	if m == nil {
		return nil, errors.New("empty listing document")
	}

	location := mapField(m, "location")
	return &entity.Listing{
		ID:       doc.ID(),
		Title:    strField(m, "title"),
		Category: strField(m, "category"),
		Kind:     strField(m, "kind"),
		Price:    floatField(m, "price"),
		Location: entity.ListingLocation{
			Country: strField(location, "country"),
			State:   strField(location, "state"),
			City:    strField(location, "city"),
			Area:    strField(location, "area"),
		},
		Bedrooms:           intField(m, "bedrooms"),
		Bathrooms:          intField(m, "bathrooms"),
		AreaValue:          floatField(m, "areaValue"),
		AreaUnit:           strField(m, "areaUnit"),
		Furnishing:         strField(m, "furnishing"),
		ConstructionStatus: strField(m, "constructionStatus"),
		Amenities:          strSliceField(m, "amenities"),
		Images:             strSliceField(m, "images"),
		Description:        strField(m, "description"),
		OwnerName:          strField(m, "ownerName"),
		OwnerPhone:         strField(m, "ownerPhone"),
		OwnerEmail:         strField(m, "ownerEmail"),
		// Legacy documents predate the flag; absent means active.
		IsActive:   boolField(m, "isActive", true),
		IsFeatured: boolField(m, "isFeatured", false),
		IsVerified: boolField(m, "isVerified", false),
		Views:      int64Field(m, "views"),
		Enquiries:  int64Field(m, "enquiries"),
		PostedAt:   timeField(m, "postedAt"),
		UpdatedAt:  timeField(m, "updatedAt"),
	}, nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func toInterfaceInts(values []int) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}
