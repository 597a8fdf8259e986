package task

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSweepStaging = "staging:sweep"

type SweepStagingPayload struct {
	MaxAgeSeconds int64 `json:"max_age_seconds"`
}

// NewSweepStagingTask creates an Asynq task for sweeping stale staged files.
func NewSweepStagingTask(maxAge time.Duration) (*asynq.Task, error) {
	p := SweepStagingPayload{MaxAgeSeconds: int64(maxAge.Seconds())}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal sweep-staging payload: %w", err)
	}
	return asynq.NewTask(TypeSweepStaging, data), nil
}

// ParseSweepStagingPayload parses the task payload to SweepStagingPayload.
func ParseSweepStagingPayload(t *asynq.Task) (SweepStagingPayload, error) {
	var p SweepStagingPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return SweepStagingPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
