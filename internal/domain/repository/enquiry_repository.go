package repository

import (
	"context"

	"estatehub/internal/domain/entity"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	GetByID(ctx context.Context, id string) (*entity.Enquiry, error)

	// List returns enquiries newest first, optionally restricted to a source
	// tag or workflow status.
	List(ctx context.Context, source, status string, pageSize int, cursor string) ([]*entity.Enquiry, string, error)

	UpdateStatus(ctx context.Context, id, status string) error
}
