package port

import (
	"context"
	"io"
)

// FileInfo represents metadata about a stored file.
type FileInfo struct {
	SizeBytes   int64
	ContentType string
}

// Storage defines object-storage operations, scoped by bucket.
type Storage interface {
	InitBucket(bucket string) error
	SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error
	GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error)
	StatFile(ctx context.Context, bucket, fileKey string) (FileInfo, error)
	FileExists(ctx context.Context, bucket, fileKey string) (bool, error)
	RemoveFile(ctx context.Context, bucket, fileKey string) error
	// PublicURL returns the canonical playback URL for a stored object.
	// Pure derivation, no network call.
	PublicURL(bucket, fileKey string) string
}
