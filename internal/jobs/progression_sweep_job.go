package jobs

import (
	"context"
	"log/slog"

	"foodhub/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ProgressionSweepJob advances orders along the progression schedule.
// Runs every second so an order's status moves even when nobody is polling it.
// The sweep reuses the same idempotent reconciliation the read path applies,
// so running both never double-advances an order.
type ProgressionSweepJob struct {
	handler commands.ReconcileOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewProgressionSweepJob creates the sweep job around the reconcile handler.
func NewProgressionSweepJob(handler commands.ReconcileOrdersCommandHandler, logger *slog.Logger) *ProgressionSweepJob {
	return &ProgressionSweepJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "progression_sweep_job"),
	}
}

// Start begins the sweep job to run every second.
func (j *ProgressionSweepJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileOrdersCommand()

		advanced, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Progression sweep failed", "error", err)
			return
		}
		if advanced > 0 {
			j.logger.InfoContext(ctx, "Progression sweep advanced orders", "count", advanced)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Progression sweep job started (running every second)")
	return nil
}

// Stop stops the sweep job.
func (j *ProgressionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Progression sweep job stopped")
}
