package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

type PartnerRepository interface {
	Create(ctx context.Context, partner *entity.Partner) error
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	ListActive(ctx context.Context) ([]*entity.Partner, error)
	ListAll(ctx context.Context) ([]*entity.Partner, error)
	Update(ctx context.Context, partner *entity.Partner) error
	Delete(ctx context.Context, id string) error
}
