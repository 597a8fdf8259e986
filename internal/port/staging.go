package port

import (
	"time"
)

// StagedKind labels the role of a locally staged artifact.
type StagedKind string

const (
	StagedVideo       StagedKind = "video"
	StagedAudio       StagedKind = "audio"
	StagedDescription StagedKind = "description"
	StagedAttachment  StagedKind = "attachment"
)

// StagedFile is a temporary local artifact owned by exactly one pipeline run.
type StagedFile struct {
	Path      string
	Kind      StagedKind
	CreatedAt time.Time
}

// Staging manages locally staged files for in-flight ingestions. Paths are
// unique even under concurrent calls in the same process.
type Staging interface {
	// Stage writes payload to a fresh uniquely-named path and returns a handle.
	Stage(data []byte, kind StagedKind, ext string) (*StagedFile, error)
	// Allocate reserves a fresh unique path without creating the file, for
	// tools that write their own output (ffmpeg).
	Allocate(kind StagedKind, ext string) *StagedFile
	// Release deletes the underlying file. It is a no-op for a nil handle or
	// an already-gone file, and never returns an error; deletion failures are
	// only logged.
	Release(f *StagedFile)
	// Sweep removes staged files older than maxAge and reports how many were
	// deleted.
	Sweep(maxAge time.Duration) (int, error)
}
