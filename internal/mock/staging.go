package mock

import (
	"fmt"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

// Staging implements local file staging for tests. Stage and Allocate hand
// out fabricated paths without touching the filesystem.
type Staging struct {
	// stored values
	SweepOut int

	// captured inputs
	StagedData  [][]byte
	StagedKinds []port.StagedKind
	Released    []*port.StagedFile
	SweepMaxAge time.Duration

	// errors
	StageErr error
	SweepErr error

	// fail only the nth Stage call (1-based), 0 means use StageErr for all
	StageErrOnCall int

	// call flags
	SweepCalled bool

	n int
}

func (m *Staging) Stage(data []byte, kind port.StagedKind, ext string) (*port.StagedFile, error) {
	m.StagedData = append(m.StagedData, data)
	m.StagedKinds = append(m.StagedKinds, kind)
	if m.StageErrOnCall > 0 {
		if len(m.StagedData) == m.StageErrOnCall {
			return nil, m.StageErr
		}
	} else if m.StageErr != nil {
		return nil, m.StageErr
	}
	m.n++
	return &port.StagedFile{
		Path:      fmt.Sprintf("/tmp/staged/%s_%d%s", kind, m.n, ext),
		Kind:      kind,
		CreatedAt: time.Now(),
	}, nil
}

func (m *Staging) Allocate(kind port.StagedKind, ext string) *port.StagedFile {
	m.n++
	return &port.StagedFile{
		Path:      fmt.Sprintf("/tmp/staged/%s_%d%s", kind, m.n, ext),
		Kind:      kind,
		CreatedAt: time.Now(),
	}
}

func (m *Staging) Release(f *port.StagedFile) {
	if f == nil {
		return
	}
	m.Released = append(m.Released, f)
}

func (m *Staging) Sweep(maxAge time.Duration) (int, error) {
	m.SweepCalled = true
	m.SweepMaxAge = maxAge
	if m.SweepErr != nil {
		return 0, m.SweepErr
	}
	return m.SweepOut, nil
}

// ReleasedPaths returns the paths handed to Release, in call order.
func (m *Staging) ReleasedPaths() []string {
	paths := make([]string, 0, len(m.Released))
	for _, f := range m.Released {
		paths = append(paths, f.Path)
	}
	return paths
}
