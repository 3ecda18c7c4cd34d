package handler

import (
	"estatehub/internal/domain/entity"
	"estatehub/internal/usecase"
	"estatehub/pkg/response"
	"estatehub/pkg/utils"

	"github.com/labstack/echo/v4"
)

type EnquiryHandler struct {
	enquiryUseCase *usecase.EnquiryUseCase
}

func NewEnquiryHandler(enquiryUseCase *usecase.EnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{
		enquiryUseCase: enquiryUseCase,
	}
}

type enquiryRequest struct {
	ListingID string `json:"listing_id"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	AltPhone  string `json:"alt_phone"`
	Message   string `json:"message"`
}

type homeLoanEnquiryRequest struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Location      string `json:"location"`
	PreferredBank string `json:"preferred_bank"`
	Message       string `json:"message"`
}

type interiorDesignEnquiryRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Location     string `json:"location"`
	PropertyType string `json:"property_type"`
	Message      string `json:"message"`
}

type promotionEnquiryRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	ListingID string `json:"listing_id"`
	Package   string `json:"package"`
	Message   string `json:"message"`
}

func (h *EnquiryHandler) SubmitEnquiry(c echo.Context) error {
	var req enquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	enquiry, err := h.enquiryUseCase.Submit(c.Request().Context(), usecase.SubmitEnquiryInput{
		ListingID: req.ListingID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		AltPhone:  req.AltPhone,
		Message:   req.Message,
		Source:    entity.SourcePropertyEnquiry,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, enquiry)
}

func (h *EnquiryHandler) SubmitHomeLoanEnquiry(c echo.Context) error {
	var req homeLoanEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	extra := map[string]string{}
	if req.Location != "" {
		extra["location"] = req.Location
	}
	if req.PreferredBank != "" {
		extra["preferredBank"] = req.PreferredBank
	}

	enquiry, err := h.enquiryUseCase.Submit(c.Request().Context(), usecase.SubmitEnquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Source:  entity.SourceHomeLoans,
		Extra:   extra,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, enquiry)
}

func (h *EnquiryHandler) SubmitInteriorDesignEnquiry(c echo.Context) error {
	var req interiorDesignEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	extra := map[string]string{}
	if req.Location != "" {
		extra["location"] = req.Location
	}
	if req.PropertyType != "" {
		extra["propertyType"] = req.PropertyType
	}

	enquiry, err := h.enquiryUseCase.Submit(c.Request().Context(), usecase.SubmitEnquiryInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
		Source:  entity.SourceInteriorDesign,
		Extra:   extra,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, enquiry)
}

func (h *EnquiryHandler) SubmitPromotionEnquiry(c echo.Context) error {
	var req promotionEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	extra := map[string]string{}
	if req.Package != "" {
		extra["package"] = req.Package
	}

	enquiry, err := h.enquiryUseCase.Submit(c.Request().Context(), usecase.SubmitEnquiryInput{
		ListingID: req.ListingID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Source:    entity.SourcePropertyPromotions,
		Extra:     extra,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, enquiry)
}

func (h *EnquiryHandler) ListEnquiries(c echo.Context) error {
	params := utils.GetPageParams(c)

	enquiries, nextCursor, err := h.enquiryUseCase.List(
		c.Request().Context(),
		c.QueryParam("source"),
		c.QueryParam("status"),
		params.Limit,
		params.Cursor,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.CursorPage(c, enquiries, nextCursor)
}

func (h *EnquiryHandler) GetEnquiry(c echo.Context) error {
	enquiry, err := h.enquiryUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, enquiry)
}

type updateEnquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted closed"`
}

func (h *EnquiryHandler) UpdateEnquiryStatus(c echo.Context) error {
	var req updateEnquiryStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	enquiry, err := h.enquiryUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, enquiry)
}
