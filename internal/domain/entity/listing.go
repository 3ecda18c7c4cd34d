package entity

import (
	"time"
)

// Listing categories.
const (
	CategoryApartment  = "apartment"
	CategoryVilla      = "villa"
	CategoryPlot       = "plot"
	CategoryCommercial = "commercial"
	CategoryFarmhouse  = "farmhouse"
	CategoryPenthouse  = "penthouse"
)

// Transaction kinds.
const (
	KindSale = "sale"
	KindRent = "rent"
)

// Sort keys accepted by the listing query layer.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortPopular   = "popular"
)

type ListingLocation struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	Area    string `json:"area"`
}

type Listing struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Category           string          `json:"category"`
	Kind               string          `json:"kind"`
	Price              float64         `json:"price"`
	Location           ListingLocation `json:"location"`
	Bedrooms           int             `json:"bedrooms"`
	Bathrooms          int             `json:"bathrooms"`
	AreaValue          float64         `json:"area_value"`
	AreaUnit           string          `json:"area_unit"`
	Furnishing         string          `json:"furnishing"`
	ConstructionStatus string          `json:"construction_status"`
	Amenities          []string        `json:"amenities"`
	Images             []string        `json:"images"`
	Description        string          `json:"description"`
	OwnerName          string          `json:"owner_name"`
	OwnerPhone         string          `json:"owner_phone"`
	OwnerEmail         string          `json:"owner_email"`

	// IsActive defaults to true when absent from a stored document; listings
	// created before the flag existed are treated as active.
	IsActive   bool `json:"is_active"`
	IsFeatured bool `json:"is_featured"`
	IsVerified bool `json:"is_verified"`

	Views     int64 `json:"views"`
	Enquiries int64 `json:"enquiries"`

	// PostedAt is assigned once at creation and never changes; UpdatedAt
	// advances on every mutation.
	PostedAt  time.Time `json:"posted_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var validCategories = map[string]bool{
	CategoryApartment:  true,
	CategoryVilla:      true,
	CategoryPlot:       true,
	CategoryCommercial: true,
	CategoryFarmhouse:  true,
	CategoryPenthouse:  true,
}

func IsValidCategory(category string) bool {
	return validCategories[category]
}

func IsValidKind(kind string) bool {
	return kind == KindSale || kind == KindRent
}

func IsValidSort(sort string) bool {
	switch sort {
	case SortNewest, SortPriceLow, SortPriceHigh, SortPopular:
		return true
	}
	return false
}
