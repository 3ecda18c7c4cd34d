package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

type BlogRepository interface {
	Create(ctx context.Context, post *entity.BlogPost) error
	GetByID(ctx context.Context, id string) (*entity.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	ListPublished(ctx context.Context, pageSize int, cursor string) ([]*entity.BlogPost, string, error)
	ListAll(ctx context.Context, pageSize int, cursor string) ([]*entity.BlogPost, string, error)
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}
