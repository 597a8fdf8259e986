package mock

import "context"

// Dispatcher implements task dispatching for tests.
type Dispatcher struct {
	SweepCalled bool
	SweepCalls  int
	SweepErr    error
}

func (m *Dispatcher) EnqueueSweepStaging(ctx context.Context) error {
	m.SweepCalled = true
	m.SweepCalls++
	return m.SweepErr
}
