package jobs

import (
	"context"
	"log/slog"

	"restopos/internal/core/application/usecases/commands"
	"restopos/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// snapshotSchedule takes the nightly snapshot at 03:00, when the floor is
// closed and the write barrier drains instantly.
const snapshotSchedule = "0 0 3 * * *"

// snapshotName is the record name scheduled snapshots are filed under. The
// on-disk filename embeds the timestamp, so nightly runs never collide.
const snapshotName = "nightly"

// SnapshotJob takes a scheduled snapshot of the store.
type SnapshotJob struct {
	handler commands.CreateSnapshotCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewSnapshotJob creates the nightly snapshot job.
func NewSnapshotJob(handler commands.CreateSnapshotCommandHandler, logger *slog.Logger) *SnapshotJob {
	return &SnapshotJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "snapshot_job"),
	}
}

// Start schedules the nightly snapshot.
func (j *SnapshotJob) Start() error {
	_, err := j.cron.AddFunc(snapshotSchedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCreateSnapshotCommand(kernel.NewUUID(), snapshotName)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Snapshot job could not build command", "error", cmdErr)
			return
		}

		record, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Snapshot job failed", "error", handleErr)
			return
		}

		j.logger.InfoContext(ctx, "Snapshot taken",
			"record_id", record.ID().String(),
			"file", record.Filename(),
			"size_bytes", record.SizeBytes(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Snapshot job started (running daily at 03:00)")
	return nil
}

// Stop stops the snapshot job.
func (j *SnapshotJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot job stopped")
}
