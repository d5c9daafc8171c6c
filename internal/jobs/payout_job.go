package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// payoutSchedule settles pending rider earnings at the top of every hour.
const payoutSchedule = "0 0 * * * *"

// PayoutJob periodically marks pending rider earnings as paid.
type PayoutJob struct {
	handler commands.ProcessPayoutsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPayoutJob creates a job that settles rider earnings on a fixed schedule.
func NewPayoutJob(handler commands.ProcessPayoutsCommandHandler, logger *slog.Logger) *PayoutJob {
	return &PayoutJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "payout_job"),
	}
}

// Start begins the payout job on its hourly schedule.
func (j *PayoutJob) Start() error {
	_, err := j.cron.AddFunc(payoutSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewProcessPayoutsCommand()

		settled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Payout job failed", "error", err)
			return
		}

		if settled > 0 {
			j.logger.InfoContext(ctx, "Settled rider earnings", "count", settled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Payout job started (running hourly)")
	return nil
}

// Stop stops the payout job.
func (j *PayoutJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Payout job stopped")
}
