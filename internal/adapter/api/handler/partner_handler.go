package handler

import (
	"estatehub/internal/usecase"
	"estatehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type PartnerHandler struct {
	partnerUseCase *usecase.PartnerUseCase
}

func NewPartnerHandler(partnerUseCase *usecase.PartnerUseCase) *PartnerHandler {
	return &PartnerHandler{
		partnerUseCase: partnerUseCase,
	}
}

type partnerRequest struct {
	Name         string `json:"name" validate:"required"`
	LogoURL      string `json:"logo_url" validate:"required,url"`
	Website      string `json:"website"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (r partnerRequest) toInput() usecase.PartnerInput {
	return usecase.PartnerInput{
		Name:         r.Name,
		LogoURL:      r.LogoURL,
		Website:      r.Website,
		DisplayOrder: r.DisplayOrder,
		IsActive:     r.IsActive,
	}
}

func (h *PartnerHandler) ListPartners(c echo.Context) error {
	partners, err := h.partnerUseCase.ListActive(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, partners)
}

func (h *PartnerHandler) CreatePartner(c echo.Context) error {
	var req partnerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	partner, err := h.partnerUseCase.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, partner)
}

func (h *PartnerHandler) UpdatePartner(c echo.Context) error {
	var req partnerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	partner, err := h.partnerUseCase.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, partner)
}

func (h *PartnerHandler) ListPartnersAdmin(c echo.Context) error {
	partners, err := h.partnerUseCase.ListAll(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, partners)
}

func (h *PartnerHandler) DeletePartner(c echo.Context) error {
	if err := h.partnerUseCase.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}
