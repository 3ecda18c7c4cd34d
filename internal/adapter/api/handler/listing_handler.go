package handler

import (
	"strconv"
	"strings"

	"estatehub/internal/domain/repository"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/utils"

	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Title              string   `json:"title" validate:"required"`
	Category           string   `json:"category" validate:"required"`
	Kind               string   `json:"kind" validate:"required"`
	Price              float64  `json:"price" validate:"required,gt=0"`
	Country            string   `json:"country"`
	State              string   `json:"state"`
	City               string   `json:"city" validate:"required"`
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

func (r listingRequest) toInput() usecase.ListingInput {
	return usecase.ListingInput{
		Title:              r.Title,
		Category:           r.Category,
		Kind:               r.Kind,
		Price:              r.Price,
		Country:            r.Country,
		State:              r.State,
		City:               r.City,
		Area:               r.Area,
		Bedrooms:           r.Bedrooms,
		Bathrooms:          r.Bathrooms,
		AreaValue:          r.AreaValue,
		AreaUnit:           r.AreaUnit,
		Furnishing:         r.Furnishing,
		ConstructionStatus: r.ConstructionStatus,
		Amenities:          r.Amenities,
		Images:             r.Images,
		Description:        r.Description,
		OwnerName:          r.OwnerName,
		OwnerPhone:         r.OwnerPhone,
		OwnerEmail:         r.OwnerEmail,
		IsActive:           r.IsActive,
		IsFeatured:         r.IsFeatured,
		IsVerified:         r.IsVerified,
	}
}

// ListListings serves the public browse page. Filters arrive as query
// parameters; "categories" and "bedrooms" accept comma-separated sets.
func (h *ListingHandler) ListListings(c echo.Context) error {
	filter := repository.ListingFilter{
		Kind: c.QueryParam("kind"),
		City: c.QueryParam("city"),
		Sort: c.QueryParam("sort"),
	}

	if raw := c.QueryParam("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				filter.Categories = append(filter.Categories, cat)
			}
		}
	}

	if raw := c.QueryParam("bedrooms"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(b))
			if err == nil && n > 0 {
				filter.Bedrooms = append(filter.Bedrooms, n)
			}
		}
	}

	params := utils.GetPageParams(c)

	listings, nextCursor, err := h.listingUseCase.List(c.Request().Context(), filter, params.Limit, params.Cursor)
	if err != nil {
		return response.Error(c, err)
	}

	return response.CursorPage(c, listings, nextCursor)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) FeaturedListings(c echo.Context) error {
	count := 8
	if raw := c.QueryParam("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			count = n
		}
	}

	listings, err := h.listingUseCase.Featured(c.Request().Context(), count)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) ListingsByCategory(c echo.Context) error {
	count := 8
	if raw := c.QueryParam("count"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 50 {
			count = n
		}
	}

	listings, err := h.listingUseCase.ByCategory(c.Request().Context(), c.Param("category"), count)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) GetListingAdmin(c echo.Context) error {
	listing, err := h.listingUseCase.GetAdmin(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListListingsAdmin(c echo.Context) error {
	params := utils.GetPageParams(c)

	listings, nextCursor, err := h.listingUseCase.ListAdmin(c.Request().Context(), params.Limit, params.Cursor)
	if err != nil {
		return response.Error(c, err)
	}

	return response.CursorPage(c, listings, nextCursor)
}

func (h *ListingHandler) DeactivateListing(c echo.Context) error {
	if err := h.listingUseCase.Deactivate(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deactivated"})
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	if err := h.listingUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
