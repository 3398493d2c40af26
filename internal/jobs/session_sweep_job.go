package jobs

import (
	"context"
	"log/slog"

	"restopos/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// sweepSchedule drops expired sessions once a minute.
const sweepSchedule = "0 * * * * *"

// SessionSweepJob periodically removes expired login sessions so the
// in-memory session store cannot grow without bound.
type SessionSweepJob struct {
	sessions ports.SessionGuard
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionSweepJob creates the session sweep job.
func NewSessionSweepJob(sessions ports.SessionGuard, logger *slog.Logger) *SessionSweepJob {
	return &SessionSweepJob{
		sessions: sessions,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *SessionSweepJob) Start() error {
	_, err := j.cron.AddFunc(sweepSchedule, func() {
		ctx := context.Background()

		if removed := j.sessions.Sweep(ctx); removed > 0 {
			j.logger.InfoContext(ctx, "Expired sessions removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session sweep job started (running every minute)")
	return nil
}

// Stop stops the sweep job.
func (j *SessionSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session sweep job stopped")
}
