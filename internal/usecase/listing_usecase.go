package usecase

import (
	"context"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	pageSize    int
}

func NewListingUseCase(listingRepo repository.ListingRepository, pageSize int) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		pageSize:    pageSize,
	}
}

type ListingInput struct {
	Title              string   `json:"title"`
	Category           string   `json:"category"`
	Kind               string   `json:"kind"`
	Price              float64  `json:"price"`
	Country            string   `json:"country"`
	State              string   `json:"state"`
	City               string   `json:"city"`
	Area               string   `json:"area"`
	Bedrooms           int      `json:"bedrooms"`
	Bathrooms          int      `json:"bathrooms"`
	AreaValue          float64  `json:"area_value"`
	AreaUnit           string   `json:"area_unit"`
	Furnishing         string   `json:"furnishing"`
	ConstructionStatus string   `json:"construction_status"`
	Amenities          []string `json:"amenities"`
	Images             []string `json:"images"`
	Description        string   `json:"description"`
	OwnerName          string   `json:"owner_name"`
	OwnerPhone         string   `json:"owner_phone"`
	OwnerEmail         string   `json:"owner_email"`
	IsActive           *bool    `json:"is_active"`
	IsFeatured         bool     `json:"is_featured"`
	IsVerified         bool     `json:"is_verified"`
}

func (uc *ListingUseCase) Create(ctx context.Context, input ListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	listing := &entity.Listing{
		Title:    input.Title,
		Category: input.Category,
		Kind:     input.Kind,
		Price:    input.Price,
		Location: entity.ListingLocation{
			Country: input.Country,
			State:   input.State,
			City:    input.City,
			Area:    input.Area,
		},
		Bedrooms:           input.Bedrooms,
		Bathrooms:          input.Bathrooms,
		AreaValue:          input.AreaValue,
		AreaUnit:           input.AreaUnit,
		Furnishing:         input.Furnishing,
		ConstructionStatus: input.ConstructionStatus,
		Amenities:          input.Amenities,
		Images:             input.Images,
		Description:        input.Description,
		OwnerName:          input.OwnerName,
		OwnerPhone:         input.OwnerPhone,
		OwnerEmail:         input.OwnerEmail,
		IsActive:           isActive,
		IsFeatured:         input.IsFeatured,
		IsVerified:         input.IsVerified,
	}

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) Update(ctx context.Context, id string, input ListingInput) (*entity.Listing, error) {
	if err := validateListingInput(input); err != nil {
		return nil, err
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	listing.Title = input.Title
	listing.Category = input.Category
	listing.Kind = input.Kind
	listing.Price = input.Price
	listing.Location = entity.ListingLocation{
		Country: input.Country,
		State:   input.State,
		City:    input.City,
		Area:    input.Area,
	}
	listing.Bedrooms = input.Bedrooms
	listing.Bathrooms = input.Bathrooms
	listing.AreaValue = input.AreaValue
	listing.AreaUnit = input.AreaUnit
	listing.Furnishing = input.Furnishing
	listing.ConstructionStatus = input.ConstructionStatus
	listing.Amenities = input.Amenities
	listing.Images = input.Images
	listing.Description = input.Description
	listing.OwnerName = input.OwnerName
	listing.OwnerPhone = input.OwnerPhone
	listing.OwnerEmail = input.OwnerEmail
	if input.IsActive != nil {
		listing.IsActive = *input.IsActive
	}
	listing.IsFeatured = input.IsFeatured
	listing.IsVerified = input.IsVerified

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Get serves the public detail page: inactive listings are hidden, and a
// successful read bumps the view counter without blocking the response.
func (uc *ListingUseCase) Get(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !listing.IsActive {
		return nil, errors.NotFound("Listing", nil)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = uc.listingRepo.IncrementViews(ctx, id)
	}()

	return listing, nil
}

func (uc *ListingUseCase) GetAdmin(ctx context.Context, id string) (*entity.Listing, error) {
	return uc.listingRepo.GetByID(ctx, id)
}

func (uc *ListingUseCase) List(ctx context.Context, filter repository.ListingFilter, limit int, cursor string) ([]*entity.Listing, string, error) {
	if filter.Sort != "" && !entity.IsValidSort(filter.Sort) {
		return nil, "", errors.BadRequest("Invalid sort key", nil)
	}
	if filter.Kind != "" && !entity.IsValidKind(filter.Kind) {
		return nil, "", errors.BadRequest("Invalid transaction kind", nil)
	}
	for _, category := range filter.Categories {
		if !entity.IsValidCategory(category) {
			return nil, "", errors.BadRequest("Invalid category", nil)
		}
	}

	if limit <= 0 {
		limit = uc.pageSize
	}
	return uc.listingRepo.List(ctx, filter, limit, cursor)
}

func (uc *ListingUseCase) ListAdmin(ctx context.Context, limit int, cursor string) ([]*entity.Listing, string, error) {
	if limit <= 0 {
		limit = uc.pageSize
	}
	return uc.listingRepo.ListAll(ctx, limit, cursor)
}

func (uc *ListingUseCase) Featured(ctx context.Context, count int) ([]*entity.Listing, error) {
	return uc.listingRepo.Featured(ctx, count)
}

func (uc *ListingUseCase) ByCategory(ctx context.Context, category string, count int) ([]*entity.Listing, error) {
	if !entity.IsValidCategory(category) {
		return nil, errors.BadRequest("Invalid category", nil)
	}
	return uc.listingRepo.ByCategory(ctx, category, count)
}

// Deactivate is the logical delete; Delete removes the document for good.
func (uc *ListingUseCase) Deactivate(ctx context.Context, id string) error {
	return uc.listingRepo.Deactivate(ctx, id)
}

func (uc *ListingUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.listingRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.listingRepo.Delete(ctx, id)
}

func validateListingInput(input ListingInput) error {
	if input.Title == "" {
		return errors.BadRequest("Title is required", nil)
	}
	if !entity.IsValidCategory(input.Category) {
		return errors.BadRequest("Invalid category", nil)
	}
	if !entity.IsValidKind(input.Kind) {
		return errors.BadRequest("Invalid transaction kind", nil)
	}
	if input.Price <= 0 {
		return errors.BadRequest("Price must be greater than zero", nil)
	}
	return nil
}
