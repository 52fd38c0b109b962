package jobs

import (
	"context"
	"log/slog"

	"orderdesk/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule fires every five seconds.
const DefaultOutboxRelaySchedule = "*/5 * * * * *"

type outboxRelayHandler interface {
	Handle(ctx context.Context, cmd commands.PublishOrderEventsCommand) (int, error)
}

// OutboxRelayJob publishes pending order events on a cron schedule.
type OutboxRelayJob struct {
	handler   outboxRelayHandler
	schedule  string
	batchSize int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates the job. schedule is a six-field cron spec; an
// empty schedule selects DefaultOutboxRelaySchedule.
func NewOutboxRelayJob(handler outboxRelayHandler, schedule string, batchSize int, logger *slog.Logger) *OutboxRelayJob {
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "outbox_relay_job")

	return &OutboxRelayJob{
		handler:   handler,
		schedule:  schedule,
		batchSize: batchSize,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

func (j *OutboxRelayJob) Name() string {
	return "outbox_relay"
}

// Start registers the relay pass and starts the scheduler.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Outbox relay job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single relay pass.
func (j *OutboxRelayJob) RunOnce() {
	ctx := context.Background()

	cmd, err := commands.NewPublishOrderEventsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job misconfigured", "error", err)
		return
	}

	if _, err = j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
	}
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Outbox relay job stopped")
}
