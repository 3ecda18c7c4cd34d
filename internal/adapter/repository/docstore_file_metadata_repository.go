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

const fileMetadataCollection = "fileMetadata"

type docstoreFileMetadataRepository struct {
	store docstore.Store
}

func NewDocstoreFileMetadataRepository(store docstore.Store) repository.FileMetadataRepository {
	return &docstoreFileMetadataRepository{store: store}
}

func (r *docstoreFileMetadataRepository) col() docstore.Collection {
	return r.store.Collection(fileMetadataCollection)
}

func (r *docstoreFileMetadataRepository) Create(ctx context.Context, metadata *entity.FileMetadata) error {
	col := r.col()
	if metadata.ID == "" {
		metadata.ID = col.NewID()
	}

	now := time.Now()
	if metadata.CreatedAt.IsZero() {
		metadata.CreatedAt = now
	}
	metadata.UpdatedAt = now

	if err := col.Set(ctx, metadata.ID, encodeFileMetadata(metadata)); err != nil {
		return apperrors.Internal("Failed to save file metadata", err)
	}
	return nil
}

func (r *docstoreFileMetadataRepository) GetByID(ctx context.Context, id string) (*entity.FileMetadata, error) {
	doc, err := r.col().Get(ctx, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, apperrors.NotFound("File", err)
		}
		return nil, apperrors.Unavailable("Failed to get file metadata", err)
	}
	return decodeFileMetadata(doc), nil
}

func (r *docstoreFileMetadataRepository) ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.FileMetadata, error) {
	docs, err := r.col().Query().
		Where("entityType", "==", entityType).
		Where("entityId", "==", entityID).
		Documents(ctx)
	if err != nil {
		return nil, apperrors.Unavailable("Failed to list files", err)
	}

	files := make([]*entity.FileMetadata, 0, len(docs))
	for _, doc := range docs {
		files = append(files, decodeFileMetadata(doc))
	}
	return files, nil
}

func (r *docstoreFileMetadataRepository) Delete(ctx context.Context, id string) error {
	if err := r.col().Delete(ctx, id); err != nil {
		return apperrors.Internal("Failed to delete file metadata", err)
	}
	return nil
}

func encodeFileMetadata(f *entity.FileMetadata) map[string]interface{} {
	return map[string]interface{}{
		"url":        f.URL,
		"objectName": f.ObjectName,
		"entityType": f.EntityType,
		"entityId":   f.EntityID,
		"uploadedBy": f.UploadedBy,
		"filename":   f.Filename,
		"fileType":   f.FileType,
		"fileSize":   f.FileSize,
		"createdAt":  f.CreatedAt,
		"updatedAt":  f.UpdatedAt,
	}
}

func decodeFileMetadata(doc docstore.Document) *entity.FileMetadata {
	m := doc.Data()
	return &entity.FileMetadata{
		ID:         doc.ID(),
		URL:        strField(m, "url"),
		ObjectName: strField(m, "objectName"),
		EntityType: strField(m, "entityType"),
		EntityID:   strField(m, "entityId"),
		UploadedBy: strField(m, "uploadedBy"),
		Filename:   strField(m, "filename"),
		FileType:   strField(m, "fileType"),
		FileSize:   int64Field(m, "fileSize"),
		CreatedAt:  timeField(m, "createdAt"),
		UpdatedAt:  timeField(m, "updatedAt"),
	}
}
