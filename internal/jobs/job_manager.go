package jobs

import (
	"log/slog"
)

// Job is a background task with a start/stop lifecycle.
type Job interface {
	Name() string
	Start() error
	Stop()
}

// JobManager starts and stops a set of jobs together.
type JobManager struct {
	jobs    []Job
	started []Job
	logger  *slog.Logger
}

func NewJobManager(logger *slog.Logger, jobs ...Job) *JobManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobManager{
		jobs:   jobs,
		logger: logger.With("component", "job_manager"),
	}
}

// StartAll starts every job in order. If one fails, the jobs already started
// are stopped and the error is returned.
func (m *JobManager) StartAll() error {
	for _, job := range m.jobs {
		if err := job.Start(); err != nil {
			m.logger.Error("Failed to start job", "job", job.Name(), "error", err)
			m.StopAll()
			return err
		}
		m.started = append(m.started, job)
	}

	m.logger.Info("All jobs started", "count", len(m.started))
	return nil
}

// StopAll stops started jobs in reverse order.
func (m *JobManager) StopAll() {
	for i := len(m.started) - 1; i >= 0; i-- {
		m.started[i].Stop()
	}
	m.started = nil
}
