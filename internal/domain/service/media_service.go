package service

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"estatehub/pkg/errors"
	"estatehub/pkg/logger"
)

const (
	// Inclusive size ceilings: a file exactly at the limit is accepted.
	MaxImageBytes = 5 * 1024 * 1024
	MaxPDFBytes   = 10 * 1024 * 1024

	jpegQuality = 80
)

// ImagePreset bounds the dimensions an uploaded image is shrunk to. The
// aspect ratio is always preserved and images are never upscaled.
type ImagePreset struct {
	Name      string
	MaxWidth  int
	MaxHeight int
}

var (
	// PresetDocument is used for inline document images such as listing
	// photos and blog covers.
	PresetDocument = ImagePreset{Name: "document", MaxWidth: 800, MaxHeight: 600}
	// PresetFloorPlan keeps more detail for floor plans.
	PresetFloorPlan = ImagePreset{Name: "floor-plan", MaxWidth: 1200, MaxHeight: 900}
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var pdfConfigOnce sync.Once

// MediaService shrinks uploads before they reach blob storage. Validation
// always runs first: an unsupported type or oversized file is rejected with
// a descriptive error before any decoding is attempted.
type MediaService struct {
	pdfConf *model.Configuration
}

func NewMediaService() *MediaService {
	pdfConfigOnce.Do(api.DisableConfigDir)
	return &MediaService{pdfConf: model.NewDefaultConfiguration()}
}

// ValidateImage checks the size ceiling and the sniffed content type.
func (s *MediaService) ValidateImage(data []byte) error {
	if int64(len(data)) > MaxImageBytes {
		return errors.BadRequest(fmt.Sprintf("Image exceeds the %dMB limit", MaxImageBytes/(1024*1024)), nil)
	}
	mime := mimetype.Detect(data)
	if !allowedImageTypes[mime.String()] {
		return errors.BadRequest(fmt.Sprintf("Unsupported image type %s", mime.String()), nil)
	}
	return nil
}

// ValidatePDF checks the size ceiling and the sniffed content type.
func (s *MediaService) ValidatePDF(data []byte) error {
	if int64(len(data)) > MaxPDFBytes {
		return errors.BadRequest(fmt.Sprintf("Document exceeds the %dMB limit", MaxPDFBytes/(1024*1024)), nil)
	}
	if !mimetype.Detect(data).Is("application/pdf") {
		return errors.BadRequest("Only PDF documents are supported", nil)
	}
	return nil
}

// PrepareImage validates, decodes and shrinks an image to the preset's
// bounds, re-encoding as JPEG. The returned bytes are what gets stored.
func (s *MediaService) PrepareImage(data []byte, preset ImagePreset) ([]byte, error) {
	if err := s.ValidateImage(data); err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.BadRequest("Image file is corrupt or unreadable", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > preset.MaxWidth || bounds.Dy() > preset.MaxHeight {
		img = imaging.Fit(img, preset.MaxWidth, preset.MaxHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, errors.Internal("Failed to encode image", err)
	}

	logger.Debug("Prepared %s image: %d -> %d bytes", preset.Name, len(data), buf.Len())
	return buf.Bytes(), nil
}

// PreparePDF validates and re-saves a PDF through object-stream compaction,
// keeping the compacted version only when it is strictly smaller.
func (s *MediaService) PreparePDF(data []byte) ([]byte, error) {
	if err := s.ValidatePDF(data); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := api.Optimize(bytes.NewReader(data), &buf, s.pdfConf); err != nil {
		return nil, errors.BadRequest("PDF file is corrupt or unreadable", err)
	}

	if buf.Len() >= len(data) {
		return data, nil
	}

	logger.Debug("Compacted PDF: %d -> %d bytes", len(data), buf.Len())
	return buf.Bytes(), nil
}
