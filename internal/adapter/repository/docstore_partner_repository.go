package repository

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	apperrors "estatehub/pkg/errors"
)

const partnersCollection = "partners"

type docstorePartnerRepository struct {
	store docstore.Store
}

func NewDocstorePartnerRepository(store docstore.Store) repository.PartnerRepository {
	return &docstorePartnerRepository{store: store}
}

func (r *docstorePartnerRepository) col() docstore.Collection {
	return r.store.Collection(partnersCollection)
}

func (r *docstorePartnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	col := r.col()
	if partner.ID == "" {
		partner.ID = col.NewID()
	}

	now := time.Now()
	if partner.CreatedAt.IsZero() {
		partner.CreatedAt = now
	}
	partner.UpdatedAt = now

	if err := col.Set(ctx, partner.ID, encodePartner(partner)); err != nil {
		return apperrors.Internal("Failed to create partner", err)
	}
	return nil
}

func (r *docstorePartnerRepository) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	doc, err := r.col().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.NotFound("Partner", err)
		}
		return nil, apperrors.Unavailable("Failed to get partner", err)
	}
	return decodePartner(doc), nil
}

func (r *docstorePartnerRepository) ListActive(ctx context.Context) ([]*entity.Partner, error) {
	docs, err := r.col().Query().
		Where("isActive", "==", true).
		OrderBy("displayOrder", docstore.Ascending).
		Documents(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("Failed to load partners", err)
	}

	partners := make([]*entity.Partner, 0, len(docs))
	for _, doc := range docs {
		partners = append(partners, decodePartner(doc))
	}
	return partners, nil
}

func (r *docstorePartnerRepository) ListAll(ctx context.Context) ([]*entity.Partner, error) {
	docs, err := r.col().Query().
		OrderBy("displayOrder", docstore.Ascending).
		Documents(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("Failed to load partners", err)
	}

	partners := make([]*entity.Partner, 0, len(docs))
	for _, doc := range docs {
		partners = append(partners, decodePartner(doc))
	}
	return partners, nil
}

func (r *docstorePartnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	partner.UpdatedAt = time.Now()

	if err := r.col().Set(ctx, partner.ID, encodePartner(partner)); err != nil {
		return apperrors.Internal("Failed to update partner", err)
	}
	return nil
}

func (r *docstorePartnerRepository) Delete(ctx context.Context, id string) error {
	if err := r.col().Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete partner", err)
	}
	return nil
}

func encodePartner(p *entity.Partner) map[string]interface{} {
	return map[string]interface{}{
		"name":         p.Name,
		"logoUrl":      p.LogoURL,
		"website":      p.Website,
		"displayOrder": int64(p.DisplayOrder),
		"isActive":     p.IsActive,
		"createdAt":    p.CreatedAt,
		"updatedAt":    p.UpdatedAt,
	}
}

func decodePartner(doc docstore.Document) *entity.Partner {
	m := doc.Data()
	return &entity.Partner{
		ID:           doc.ID(),
		Name:         strField(m, "name"),
		LogoURL:      strField(m, "logoUrl"),
		Website:      strField(m, "website"),
		DisplayOrder: intField(m, "displayOrder"),
		IsActive:     boolField(m, "isActive", true),
		CreatedAt:    timeField(m, "createdAt"),
		UpdatedAt:    timeField(m, "updatedAt"),
	}
}
