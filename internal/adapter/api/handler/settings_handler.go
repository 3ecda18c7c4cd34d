package handler

import (
	"estatehub/internal/usecase"
	"estatehub/pkg/response"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

type settingsRequest struct {
	SiteName     string            `json:"site_name" validate:"required"`
	Tagline      string            `json:"tagline"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	Address      string            `json:"address"`
	SocialLinks  map[string]string `json:"social_links"`
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUseCase.Get(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.settingsUseCase.Update(c.Request().Context(), usecase.SettingsInput{
		SiteName:     req.SiteName,
		Tagline:      req.Tagline,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Address:      req.Address,
		SocialLinks:  req.SocialLinks,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
