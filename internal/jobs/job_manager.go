package jobs

import (
	"fmt"
	"log/slog"

	"keygen/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	keyCountJob *KeyCountJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	listSecretsHandler queries.ListSecretsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		keyCountJob: NewKeyCountJob(listSecretsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.keyCountJob.Start(); err != nil {
		return fmt.Errorf("failed to start key count job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.keyCountJob.Stop()
}
