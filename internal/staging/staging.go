package staging

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/uuid"
)

// Store keeps staged upload artifacts in one local directory. File names
// embed the kind, a nanosecond timestamp and a random suffix so that
// concurrent ingestions never collide.
type Store struct {
	dir string
}

// compile-time check: *Store must satisfy port.Staging
var _ port.Staging = (*Store)(nil)

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("staging: could not create directory %q: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Stage(data []byte, kind port.StagedKind, ext string) (*port.StagedFile, error) {
	f := s.Allocate(kind, ext)
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return nil, fmt.Errorf("staging: could not write %s file: %w", kind, err)
	}
	return f, nil
}

func (s *Store) Allocate(kind port.StagedKind, ext string) *port.StagedFile {
	now := time.Now()
	name := fmt.Sprintf("%s_%d_%s%s", kind, now.UnixNano(), uuid.NewUUID().String()[:8], ext)
	return &port.StagedFile{
		Path:      filepath.Join(s.dir, name),
		Kind:      kind,
		CreatedAt: now,
	}
}

// Release is nil-safe and never returns an error; failures to delete are only
// logged so they cannot mask the pipeline outcome.
func (s *Store) Release(f *port.StagedFile) {
	if f == nil || f.Path == "" {
		return
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) {
		log.Printf("staging: failed to release %s file %q: %v", f.Kind, f.Path, err)
	}
}

// Sweep deletes staged files older than maxAge. It catches leftovers from
// runs that crashed before their cleanup step.
func (s *Store) Sweep(maxAge time.Duration) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("staging: could not read directory %q: %w", s.dir, err)
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			log.Printf("staging: sweep failed to remove %q: %v", path, err)
			continue
		}
		removed++
	}
	return removed, nil
}
