package worker

import (
	"context"
	"log"
	"time"

	"github.com/elearnhq/lessons-ms-go/internal/port"
	"github.com/elearnhq/lessons-ms-go/internal/task"
)

// defaultSweepMaxAge applies when a payload carries no age, so a bare task
// still cleans up anything older than one hour.
const defaultSweepMaxAge = time.Hour

// SweepStagingHandler handles a sweep-staging task. It removes staged files
// older than the age carried in the payload.
func SweepStagingHandler(ctx context.Context, p task.SweepStagingPayload, staging port.Staging) error {
	maxAge := time.Duration(p.MaxAgeSeconds) * time.Second
	if maxAge <= 0 {
		maxAge = defaultSweepMaxAge
	}

	n, err := staging.Sweep(maxAge)
	if err != nil {
		log.Printf("❌  Failed to sweep staging dir: %v", err)
		return err
	}

	log.Printf("✅  Swept %d stale staged file(s) older than %s", n, maxAge)
	return nil
}
