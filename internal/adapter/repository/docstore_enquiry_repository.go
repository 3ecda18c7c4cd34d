package repository

import (
	"context"
	"errors"
	"time"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/infrastructure/docstore"
	apperrors "estatehub/pkg/errors"
	"estatehub/pkg/logger"
)

const enquiriesCollection = "enquiries"

type docstoreEnquiryRepository struct {
	store docstore.Store
}

func NewDocstoreEnquiryRepository(store docstore.Store) repository.EnquiryRepository {
	return &docstoreEnquiryRepository{store: store}
}

func (r *docstoreEnquiryRepository) col() docstore.Collection {
	return r.store.Collection(enquiriesCollection)
}

func (r *docstoreEnquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	col := r.col()
	if enquiry.ID == "" {
		enquiry.ID = col.NewID()
	}
	enquiry.CreatedAt = time.Now()
	enquiry.Status = entity.EnquiryStatusNew

	if err := col.Set(ctx, enquiry.ID, encodeEnquiry(enquiry)); err != nil {
		return apperrors.Internal("Failed to create enquiry", err)
	}
	return nil
}

func (r *docstoreEnquiryRepository) GetByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	doc, err := r.col().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.NotFound("Enquiry", err)
		}
		return nil, apperrors.Unavailable("Failed to get enquiry", err)
	}
	return decodeEnquiry(doc), nil
}

func (r *docstoreEnquiryRepository) List(ctx context.Context, source, status string, pageSize int, cursor string) ([]*entity.Enquiry, string, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	q := r.col().Query()
	if source != "" {
		q = q.Where("source", "==", source)
	}
	if status != "" {
		q = q.Where("status", "==", status)
	}
	q = q.OrderBy("createdAt", docstore.Descending).Limit(pageSize)
	if cursor != "" {
		q = q.StartAfter(cursor)
	}

	docs, err := q.Documents(ctx)
	if err != nil {
		if !errors.Is(err, docstore.ErrUnsupportedQuery) {
			return nil, "", apperrors.Unavailable("Failed to load enquiries", err)
		}
		// Same degradation as listings: drop the field filters, keep order.
		logger.Warn("Enquiry query missing a composite index, degrading: %v", err)
		fallback := r.col().Query().OrderBy("createdAt", docstore.Descending).Limit(pageSize)
		if cursor != "" {
			fallback = fallback.StartAfter(cursor)
		}
		docs, err = fallback.Documents(ctx)
		if err != nil {
			return nil, "", apperrors.Unavailable("Failed to load enquiries", err)
		}
	}

	enquiries := make([]*entity.Enquiry, 0, len(docs))
	for _, doc := range docs {
		enquiries = append(enquiries, decodeEnquiry(doc))
	}

	nextCursor := ""
	if len(docs) > 0 {
		nextCursor = docs[len(docs)-1].ID()
	}
	return enquiries, nextCursor, nil
}

func (r *docstoreEnquiryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	err := r.col().Update(ctx, id, []docstore.Update{
		{Path: "status", Value: status},
	})
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return apperrors.NotFound("Enquiry", err)
		}
		return apperrors.Internal("Failed to update enquiry status", err)
	}
	return nil
}

func encodeEnquiry(e *entity.Enquiry) map[string]interface{} {
	data := map[string]interface{}{
		"name":      e.Name,
		"email":     e.Email,
		"phone":     e.Phone,
		"message":   e.Message,
		"source":    e.Source,
		"status":    e.Status,
		"createdAt": e.CreatedAt,
	}
	if e.ListingID != "" {
		data["listingId"] = e.ListingID
	}
	if e.AltPhone != "" {
		data["altPhone"] = e.AltPhone
	}
	if len(e.Extra) > 0 {
		extra := make(map[string]interface{}, len(e.Extra))
		for k, v := range e.Extra {
			extra[k] = v
		}
		data["extra"] = extra
	}
	return data
}

func decodeEnquiry(doc docstore.Document) *entity.Enquiry {
	m := doc.Data()
	return &entity.Enquiry{
		ID:        doc.ID(),
		ListingID: strField(m, "listingId"),
		Name:      strField(m, "name"),
		Email:     strField(m, "email"),
		Phone:     strField(m, "phone"),
		AltPhone:  strField(m, "altPhone"),
		Message:   strField(m, "message"),
		Source:    strField(m, "source"),
		Status:    strField(m, "status"),
		Extra:     strMapField(m, "extra"),
		CreatedAt: timeField(m, "createdAt"),
	}
}
