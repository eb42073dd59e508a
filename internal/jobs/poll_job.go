package jobs

import (
	"context"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PollJob runs the poll-and-reconcile cycle for one board view on a fixed
// cadence. Each tick issues a RefreshBoardCommand; the session behind the
// handler serializes the resulting merges.
type PollJob struct {
	name     string
	cronSpec string
	handler  commands.RefreshBoardCommandHandler
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewPollJob creates a poll job for one view. The cron spec uses the
// six-field seconds syntax, e.g. "*/5 * * * * *" for every five seconds.
//
// A tick that is still fetching when the next one fires makes that next
// tick a no-op: without this, a slow fetch could complete after a fresher
// one and merge stale orders over it.
func NewPollJob(
	name string,
	cronSpec string,
	handler commands.RefreshBoardCommandHandler,
	logger *slog.Logger,
) *PollJob {
	jobLogger := logger.With("component", "poll_job", "view", name)

	return &PollJob{
		name:     name,
		cronSpec: cronSpec,
		handler:  handler,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: jobLogger})),
		),
		logger: jobLogger,
	}
}

// cronLogger adapts slog to the cron logging interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// Start begins polling on the configured cadence.
func (j *PollJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshBoardCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// The previously merged view stays up; the next tick retries.
			j.logger.ErrorContext(ctx, "Board refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Poll job started", "cron", j.cronSpec)
	return nil
}

// Stop stops the poll job.
func (j *PollJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Poll job stopped")
}
