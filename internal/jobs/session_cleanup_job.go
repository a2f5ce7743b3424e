package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ExpiredSessionRemover drops expired login sessions and reports how many
// were removed. Implemented by the HTTP session store.
type ExpiredSessionRemover interface {
	RemoveExpired() int
}

// SessionCleanupJob periodically evicts expired login sessions so the
// in-memory store does not grow without bound.
type SessionCleanupJob struct {
	sessions ExpiredSessionRemover
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewSessionCleanupJob creates a job that removes expired sessions every minute.
func NewSessionCleanupJob(sessions ExpiredSessionRemover, logger *slog.Logger) *SessionCleanupJob {
	return &SessionCleanupJob{
		sessions: sessions,
		cron:     cron.New(),
		logger:   logger.With("component", "session_cleanup_job"),
	}
}

// Start begins the session cleanup job on a one-minute schedule.
func (j *SessionCleanupJob) Start() error {
	_, err := j.cron.AddFunc("@every 1m", func() {
		ctx := context.Background()

		if removed := j.sessions.RemoveExpired(); removed > 0 {
			j.logger.InfoContext(ctx, "Expired sessions removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session cleanup job started (running every minute)")
	return nil
}

// Stop stops the session cleanup job.
func (j *SessionCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session cleanup job stopped")
}
