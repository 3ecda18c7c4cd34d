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

const (
	settingsCollection = "settings"
	settingsDocID      = "site"
)

type docstoreSettingsRepository struct {
	store docstore.Store
}

func NewDocstoreSettingsRepository(store docstore.Store) repository.SettingsRepository {
	return &docstoreSettingsRepository{store: store}
}

func (r *docstoreSettingsRepository) Get(ctx context.Context) (*entity.SiteSettings, error) {
	doc, err := r.store.Collection(settingsCollection).Get(ctx, settingsDocID)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			// The site works before an admin has ever saved settings.
			return &entity.SiteSettings{}, nil
		}
		return nil, apperrors.Unavailable("Failed to load site settings", err)
	}

	m := doc.Data()
	return &entity.SiteSettings{
		SiteName:     strField(m, "siteName"),
		Tagline:      strField(m, "tagline"),
		ContactEmail: strField(m, "contactEmail"),
		ContactPhone: strField(m, "contactPhone"),
		Address:      strField(m, "address"),
		SocialLinks:  strMapField(m, "socialLinks"),
		UpdatedAt:    timeField(m, "updatedAt"),
	}, nil
}

func (r *docstoreSettingsRepository) Save(ctx context.Context, settings *entity.SiteSettings) error {
	settings.UpdatedAt = time.Now()

	data := map[string]interface{}{
		"siteName":     settings.SiteName,
		"tagline":      settings.Tagline,
		"contactEmail": settings.ContactEmail,
		"contactPhone": settings.ContactPhone,
		"address":      settings.Address,
		"updatedAt":    settings.UpdatedAt,
	}
	if len(settings.SocialLinks) > 0 {
		links := make(map[string]interface{}, len(settings.SocialLinks))
		for k, v := range settings.SocialLinks {
			links[k] = v
		}
		data["socialLinks"] = links
	}

	if err := r.store.Collection(settingsCollection).Set(ctx, settingsDocID, data); err != nil {
		return apperrors.Internal("Failed to save site settings", err)
	}
	return nil
}
