package usecase

import (
	"context"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
	"estatehub/pkg/utils"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

type SettingsInput struct {
	SiteName     string            `json:"site_name"`
	Tagline      string            `json:"tagline"`
	ContactEmail string            `json:"contact_email"`
	ContactPhone string            `json:"contact_phone"`
	Address      string            `json:"address"`
	SocialLinks  map[string]string `json:"social_links"`
}

func (uc *SettingsUseCase) Get(ctx context.Context) (*entity.SiteSettings, error) {
	return uc.settingsRepo.Get(ctx)
}

func (uc *SettingsUseCase) Update(ctx context.Context, input SettingsInput) (*entity.SiteSettings, error) {
	if input.ContactEmail != "" && !utils.IsValidEmail(input.ContactEmail) {
		return nil, errors.BadRequest("Contact email is invalid", nil)
	}
	if input.ContactPhone != "" && !utils.IsValidPhone(input.ContactPhone) {
		return nil, errors.BadRequest("Contact phone is invalid", nil)
	}

	settings := &entity.SiteSettings{
		SiteName:     input.SiteName,
		Tagline:      input.Tagline,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Address:      input.Address,
		SocialLinks:  input.SocialLinks,
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
