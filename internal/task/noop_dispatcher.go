package task

import (
	"context"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueSweepStaging(ctx context.Context) error {
	return nil
}
