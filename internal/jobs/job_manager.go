package jobs

import (
	"fmt"
	"log/slog"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotJob     *SnapshotJob
	sessionSweepJob *SessionSweepJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	createSnapshotHandler commands.CreateSnapshotCommandHandler,
	sessions ports.SessionGuard,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotJob:     NewSnapshotJob(createSnapshotHandler, logger),
		sessionSweepJob: NewSessionSweepJob(sessions, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start session sweep job: %w", err)
	}

	if err := jm.snapshotJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionSweepJob.Stop()
		return fmt.Errorf("failed to start snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotJob.Stop()
	jm.sessionSweepJob.Stop()
}
