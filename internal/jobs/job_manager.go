package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderDispatchJob *OrderDispatchJob
	staleCartJob     *StaleCartJob

	dispatchEnabled bool
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
// The dispatch job only runs when dispatchEnabled is set; the stale cart
// sweep always runs with the given TTL.
func NewJobManager(
	dispatchHandler commands.DispatchOrderCommandHandler,
	purgeHandler commands.PurgeStaleCartsCommandHandler,
	dispatchEnabled bool,
	cartTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderDispatchJob: NewOrderDispatchJob(dispatchHandler, logger),
		staleCartJob:     NewStaleCartJob(purgeHandler, cartTTL, logger),
		dispatchEnabled:  dispatchEnabled,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.dispatchEnabled {
		if err := jm.orderDispatchJob.Start(); err != nil {
			return fmt.Errorf("failed to start order dispatch job: %w", err)
		}
	}

	if err := jm.staleCartJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		if jm.dispatchEnabled {
			jm.orderDispatchJob.Stop()
		}
		return fmt.Errorf("failed to start stale cart job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleCartJob.Stop()
	if jm.dispatchEnabled {
		jm.orderDispatchJob.Stop()
	}
}
