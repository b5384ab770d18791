package jobs

import (
	"context"
	"log/slog"
	"time"

	"cafeteria/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// Recovery cadence and staleness cutoff. The cutoff exceeds the cadence so
// an order is never re-enqueued while its original publish may still land.
const (
	recoverySchedule  = "*/30 * * * * *"
	recoveryOlderThan = time.Minute
)

// PendingOrderRecoveryJob periodically re-enqueues orders stuck in Pending.
// This closes the degraded-creation gap: an order whose row committed but
// whose job publish failed would otherwise wait forever.
type PendingOrderRecoveryJob struct {
	handler commands.RequeuePendingOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrderRecoveryJob creates the recovery job.
// Uses RequeuePendingOrdersCommandHandler to republish stale jobs every 30 seconds.
func NewPendingOrderRecoveryJob(
	handler commands.RequeuePendingOrdersCommandHandler,
	logger *slog.Logger,
) *PendingOrderRecoveryJob {
	return &PendingOrderRecoveryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "pending_order_recovery_job"),
	}
}

// Start begins the recovery job.
func (j *PendingOrderRecoveryJob) Start() error {
	_, err := j.cron.AddFunc(recoverySchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewRequeuePendingOrdersCommand(recoveryOlderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Recovery command rejected", "error", err)
			return
		}

		published, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending order recovery failed", "error", err)
			return
		}

		if published > 0 {
			j.logger.InfoContext(ctx, "Re-enqueued stale pending orders", "count", published)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order recovery job started (running every 30 seconds)")
	return nil
}

// Stop stops the recovery job.
func (j *PendingOrderRecoveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order recovery job stopped")
}
