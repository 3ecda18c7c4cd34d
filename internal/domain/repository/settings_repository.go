package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*entity.SiteSettings, error)
	Save(ctx context.Context, settings *entity.SiteSettings) error
}
