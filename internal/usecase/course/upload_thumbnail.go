package course

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"path"
	"strings"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

const BucketThumbnails = "thumbnails"

var thumbnailMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

type thumbnailUploaderSrv struct {
	repo      port.CourseRepository
	strg      port.Storage
	optimiser port.FileOptimiser
}

// compile-time check: *thumbnailUploaderSrv must satisfy port.ThumbnailUploader
var _ port.ThumbnailUploader = (*thumbnailUploaderSrv)(nil)

func NewThumbnailUploader(repo port.CourseRepository, strg port.Storage, optimiser port.FileOptimiser) port.ThumbnailUploader {
	return &thumbnailUploaderSrv{repo: repo, strg: strg, optimiser: optimiser}
}

// UploadThumbnail converts the uploaded image to WebP, stores it and points
// the course record at the new URL.
func (s *thumbnailUploaderSrv) UploadThumbnail(ctx context.Context, courseID uuid.UUID, file port.UploadedFile) (string, error) {
	ext := strings.ToLower(path.Ext(file.Name))
	mimeType, ok := thumbnailMimeTypes[ext]
	if !ok {
		return "", fmt.Errorf("%w: unsupported thumbnail format %q", ErrValidation, ext)
	}
	if len(file.Data) == 0 {
		return "", fmt.Errorf("%w: an image file is required", ErrValidation)
	}

	if _, err := s.repo.GetByID(ctx, courseID); err != nil {
		return "", err
	}

	data, err := s.optimiser.Compress(mimeType, bytes.NewReader(file.Data))
	if err != nil {
		return "", fmt.Errorf("could not convert thumbnail to WebP: %w", err)
	}

	key := fmt.Sprintf("%s.webp", courseID)
	if err := s.strg.SaveFile(ctx, BucketThumbnails, key, bytes.NewReader(data), int64(len(data)), map[string]string{"Content-Type": "image/webp"}); err != nil {
		return "", fmt.Errorf("uploading thumbnail %q: %w", key, err)
	}

	url := s.strg.PublicURL(BucketThumbnails, key)
	if err := s.repo.UpdateThumbnail(ctx, courseID, url); err != nil {
		return "", err
	}

	log.Printf("thumbnail updated for course #%s", courseID)
	return url, nil
}
