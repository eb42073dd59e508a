package jobs

import (
	"fmt"
	"log/slog"

	"orderboard/internal/core/application/usecases/commands"
)

// PollSpec describes one poll job to run: a view name for logs, a
// six-field cron expression, and the refresh handler to invoke each tick.
type PollSpec struct {
	Name    string
	Cron    string
	Handler commands.RefreshBoardCommandHandler
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pollJobs []*PollJob
}

// NewJobManager creates a job manager running one poll job per spec.
func NewJobManager(logger *slog.Logger, specs ...PollSpec) *JobManager {
	jm := &JobManager{}
	for _, spec := range specs {
		jm.pollJobs = append(jm.pollJobs, NewPollJob(spec.Name, spec.Cron, spec.Handler, logger))
	}
	return jm
}

// StartAll starts all scheduled jobs.
// If any job fails to start, already started jobs are stopped again.
func (jm *JobManager) StartAll() error {
	for i, job := range jm.pollJobs {
		if err := job.Start(); err != nil {
			for _, started := range jm.pollJobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start poll job %q: %w", job.name, err)
		}
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, job := range jm.pollJobs {
		job.Stop()
	}
}
