package usecase

import (
	"context"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/pkg/errors"
)

type PartnerUseCase struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerUseCase(partnerRepo repository.PartnerRepository) *PartnerUseCase {
	return &PartnerUseCase{partnerRepo: partnerRepo}
}

type PartnerInput struct {
	Name         string `json:"name"`
	LogoURL      string `json:"logo_url"`
	Website      string `json:"website"`
	DisplayOrder int    `json:"display_order"`
	IsActive     *bool  `json:"is_active"`
}

func (uc *PartnerUseCase) Create(ctx context.Context, input PartnerInput) (*entity.Partner, error) {
	if input.Name == "" {
		return nil, errors.BadRequest("Name is required", nil)
	}
	if input.LogoURL == "" {
		return nil, errors.BadRequest("Logo URL is required", nil)
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	partner := &entity.Partner{
		Name:         input.Name,
		LogoURL:      input.LogoURL,
		Website:      input.Website,
		DisplayOrder: input.DisplayOrder,
		IsActive:     isActive,
	}

	if err := uc.partnerRepo.Create(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (uc *PartnerUseCase) Update(ctx context.Context, id string, input PartnerInput) (*entity.Partner, error) {
	partner, err := uc.partnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		partner.Name = input.Name
	}
	if input.LogoURL != "" {
		partner.LogoURL = input.LogoURL
	}
	partner.Website = input.Website
	partner.DisplayOrder = input.DisplayOrder
	if input.IsActive != nil {
		partner.IsActive = *input.IsActive
	}

	if err := uc.partnerRepo.Update(ctx, partner); err != nil {
		return nil, err
	}
	return partner, nil
}

func (uc *PartnerUseCase) ListActive(ctx context.Context) ([]*entity.Partner, error) {
	return uc.partnerRepo.ListActive(ctx)
}

func (uc *PartnerUseCase) ListAll(ctx context.Context) ([]*entity.Partner, error) {
	return uc.partnerRepo.ListAll(ctx)
}

func (uc *PartnerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.partnerRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.partnerRepo.Delete(ctx, id)
}
