package service

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"

	"estatehub/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 10 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// padTo appends trailing bytes to hit an exact length. The format sniffing
// only looks at the header and the PNG decoder stops at the end marker, so
// padding changes the size without breaking the file.
func padTo(data []byte, size int) []byte {
	padded := make([]byte, size)
	copy(padded, data)
	return padded
}

func TestValidateImageSizeCeilingIsInclusive(t *testing.T) {
	s := NewMediaService()
	img := pngBytes(t, 10, 10)

	assert.NoError(t, s.ValidateImage(padTo(img, MaxImageBytes)))

	err := s.ValidateImage(padTo(img, MaxImageBytes+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestValidateImageRejectsUnsupportedType(t *testing.T) {
	s := NewMediaService()

	err := s.ValidateImage([]byte("plain text, not an image"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestPrepareImageShrinksToPreset(t *testing.T) {
	s := NewMediaService()

	out, err := s.PrepareImage(pngBytes(t, 1600, 1200), PresetDocument)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.LessOrEqual(t, img.Bounds().Dx(), PresetDocument.MaxWidth)
	assert.LessOrEqual(t, img.Bounds().Dy(), PresetDocument.MaxHeight)
	// 4:3 input against a 4:3 preset keeps both bounds tight.
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestPrepareImageNeverUpscales(t *testing.T) {
	s := NewMediaService()

	out, err := s.PrepareImage(pngBytes(t, 120, 90), PresetFloorPlan)
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 90, img.Bounds().Dy())
}

func TestPrepareImageRejectsTruncatedFile(t *testing.T) {
	s := NewMediaService()

	// Valid header, truncated body: passes sniffing, fails decoding.
	img := pngBytes(t, 100, 100)
	_, err := s.PrepareImage(img[:30], PresetDocument)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestValidatePDFSizeCeilingIsInclusive(t *testing.T) {
	s := NewMediaService()
	header := []byte("%PDF-1.7\n")

	assert.NoError(t, s.ValidatePDF(padTo(header, MaxPDFBytes)))

	err := s.ValidatePDF(padTo(header, MaxPDFBytes+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestValidatePDFRejectsNonPDF(t *testing.T) {
	s := NewMediaService()

	err := s.ValidatePDF(pngBytes(t, 10, 10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}
