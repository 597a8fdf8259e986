package mock

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      io.ReadSeeker
	ExistsOut   bool

	// captured inputs
	SavedBuckets []string
	SavedKeys    []string
	SavedData    [][]byte
	RemovedKeys  []string

	// errors
	InitBucketErr error
	StatErr       error
	RemoveErr     error
	GetErr        error
	SaveErr       error
	FileExistsErr error

	// fail only the nth SaveFile call (1-based), 0 means use SaveErr for all
	SaveErrOnCall int

	// call flags
	InitBucketCalled bool
	StatCalled       bool
	RemoveCalled     bool
	GetCalled        bool
	SaveCalled       bool
	FileExistsCalled bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	data, _ := io.ReadAll(reader)
	m.SavedBuckets = append(m.SavedBuckets, bucket)
	m.SavedKeys = append(m.SavedKeys, fileKey)
	m.SavedData = append(m.SavedData, data)
	if m.SaveErrOnCall > 0 {
		if len(m.SavedKeys) == m.SaveErrOnCall {
			return m.SaveErr
		}
		return nil
	}
	return m.SaveErr
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{m.GetOut}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return m.RemoveErr
}

func (m *Storage) PublicURL(bucket, fileKey string) string {
	return fmt.Sprintf("https://cdn.example.com/%s/%s", bucket, fileKey)
}
