package jobs

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleCartJob sweeps abandoned carts. Runs hourly and removes carts that
// stayed unconfirmed longer than the configured TTL, together with their
// lines.
type StaleCartJob struct {
	handler commands.PurgeStaleCartsCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleCartJob creates a new job for purging stale carts.
func NewStaleCartJob(handler commands.PurgeStaleCartsCommandHandler, ttl time.Duration, logger *slog.Logger) *StaleCartJob {
	return &StaleCartJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_cart_job"),
	}
}

// Start begins the stale cart job to run at the top of every hour.
func (j *StaleCartJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewPurgeStaleCartsCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale cart job misconfigured", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale cart job failed", "error", handleErr)
			return
		}
		if purged > 0 {
			j.logger.InfoContext(ctx, "Stale carts purged", "count", purged, "ttl", j.ttl.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale cart job started (running hourly)")
	return nil
}

// Stop stops the stale cart job.
func (j *StaleCartJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale cart job stopped")
}
