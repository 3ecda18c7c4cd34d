package usecase

import (
	"context"

	"estatehub/internal/domain/entity"
	"estatehub/internal/domain/repository"
	"estatehub/internal/domain/service"
	"estatehub/pkg/logger"
)

type FileUseCase struct {
	media            *service.MediaService
	storage          Storage
	fileMetadataRepo repository.FileMetadataRepository
}

func NewFileUseCase(media *service.MediaService, storage Storage, fileMetadataRepo repository.FileMetadataRepository) *FileUseCase {
	return &FileUseCase{
		media:            media,
		storage:          storage,
		fileMetadataRepo: fileMetadataRepo,
	}
}

type UploadInput struct {
	Filename   string
	EntityType string
	EntityID   string
	UploadedBy string
}

// UploadImage validates and compresses the image before anything touches
// blob storage; kind selects the dimension preset ("floor-plan" keeps more
// detail than the default document preset).
func (uc *FileUseCase) UploadImage(ctx context.Context, data []byte, kind string, input UploadInput) (*entity.FileMetadata, error) {
	preset := service.PresetDocument
	folder := "images"
	if kind == service.PresetFloorPlan.Name {
		preset = service.PresetFloorPlan
		folder = "floor-plans"
	}

	prepared, err := uc.media.PrepareImage(data, preset)
	if err != nil {
		return nil, err
	}

	url, objectName, err := uc.storage.Upload(ctx, prepared, "image/jpeg", folder)
	if err != nil {
		return nil, err
	}

	return uc.saveMetadata(ctx, url, objectName, "image/jpeg", int64(len(prepared)), input)
}

// UploadDocument validates and compacts a PDF, keeping the original bytes
// when compaction does not shrink them.
func (uc *FileUseCase) UploadDocument(ctx context.Context, data []byte, input UploadInput) (*entity.FileMetadata, error) {
	prepared, err := uc.media.PreparePDF(data)
	if err != nil {
		return nil, err
	}

	url, objectName, err := uc.storage.Upload(ctx, prepared, "application/pdf", "documents")
	if err != nil {
		return nil, err
	}

	return uc.saveMetadata(ctx, url, objectName, "application/pdf", int64(len(prepared)), input)
}

func (uc *FileUseCase) saveMetadata(ctx context.Context, url, objectName, fileType string, size int64, input UploadInput) (*entity.FileMetadata, error) {
	metadata := &entity.FileMetadata{
		URL:        url,
		ObjectName: objectName,
		EntityType: input.EntityType,
		EntityID:   input.EntityID,
		UploadedBy: input.UploadedBy,
		Filename:   input.Filename,
		FileType:   fileType,
		FileSize:   size,
	}

	// The object is already stored and publicly addressable; bookkeeping
	// failure is logged rather than failing the upload.
	if err := uc.fileMetadataRepo.Create(ctx, metadata); err != nil {
		logger.Error("Failed to save metadata for %s: %v", objectName, err)
	}
	return metadata, nil
}

func (uc *FileUseCase) Delete(ctx context.Context, id string) error {
	metadata, err := uc.fileMetadataRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.storage.Delete(ctx, metadata.ObjectName); err != nil {
		return err
	}
	return uc.fileMetadataRepo.Delete(ctx, id)
}

func (uc *FileUseCase) ListByEntity(ctx context.Context, entityType, entityID string) ([]*entity.FileMetadata, error) {
	return uc.fileMetadataRepo.ListByEntity(ctx, entityType, entityID)
}

// ListObjects exposes raw object names under a prefix for the admin media
// browser.
func (uc *FileUseCase) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	return uc.storage.List(ctx, prefix)
}
