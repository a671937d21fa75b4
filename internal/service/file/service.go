package file

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/emsuite/ems-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

type FileService interface {
	// Face reference image uploads
	UploadFaceReference(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadFaceReference stores the reference photo captured during face enrollment.
// The stored image is display-only; matching runs against the descriptor vector.
// Compresses image to target size between 50KB - 150KB.
func (s *fileServiceImpl) UploadFaceReference(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	// Validate image format
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	// Read the entire file into memory
	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	// Compress image to target size (50KB - 150KB)
	compressed, err := compressImage(buffer, 150*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// Generate path: faces/{employeeID}/{uuid}.jpg
	// Always output as JPEG after compression for consistency
	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s.jpg", uniqueID)
	path := filepath.Join("faces", employeeID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload face reference: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// ==================== HELPER FUNCTIONS ====================

// compressImage compresses an image to target size range
// maxSize: maximum allowed size (e.g., 150KB)
// minSize: minimum target size (e.g., 50KB)
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	// Check if compression is needed
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	// Decode the image
	img, format, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	originalWidth := bounds.Dx()
	originalHeight := bounds.Dy()

	// Start with quality 85 and reduce progressively
	quality := 85
	var compressed []byte

	for quality >= 50 {
		buf := new(bytes.Buffer)
		err = jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
		if err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}

		compressed = buf.Bytes()

		if len(compressed) <= maxSize && len(compressed) >= minSize {
			return compressed, nil
		}

		if len(compressed) > maxSize {
			quality -= 5
			continue
		}

		// If too small but quality already low, accept it
		if len(compressed) < minSize && quality <= 60 {
			return compressed, nil
		}

		break
	}

	// If still too large after quality reduction, try resizing
	if len(compressed) > maxSize {
		// Calculate resize ratio to target 100KB (middle of range)
		targetSize := 100 * 1024
		ratio := math.Sqrt(float64(targetSize) / float64(len(compressed)))
		newWidth := int(float64(originalWidth) * ratio)
		newHeight := int(float64(originalHeight) * ratio)

		if newWidth < 600 {
			newWidth = 600
		}
		if newHeight < 400 {
			newHeight = 400
		}

		resized := resizeImage(img, newWidth, newHeight)

		buf := new(bytes.Buffer)
		err = jpeg.Encode(buf, resized, &jpeg.Options{Quality: 70})
		if err != nil {
			return nil, fmt.Errorf("failed to encode resized image: %w", err)
		}

		compressed = buf.Bytes()
	}

	_ = format // PNG will be converted to JPEG

	return compressed, nil
}

// resizeImage resizes an image to the specified dimensions using high-quality interpolation
func resizeImage(src image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}
