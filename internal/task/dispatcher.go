package task

import (
	"context"
	"time"

	"github.com/hibiken/asynq"

	"github.com/elearnhq/lessons-ms-go/internal/port"
)

type Dispatcher struct {
	client *asynq.Client
	maxAge time.Duration
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string, maxAge time.Duration) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c, maxAge: maxAge}
}

func (d *Dispatcher) EnqueueSweepStaging(ctx context.Context) error {
	t, err := NewSweepStagingTask(d.maxAge)
	if err != nil {
		return err
	}
	if _, err := d.client.EnqueueContext(ctx, t); err != nil {
		return err
	}
	return nil
}

func (d *Dispatcher) Close() error {
	return d.client.Close()
}
