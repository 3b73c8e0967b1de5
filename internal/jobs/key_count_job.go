package jobs

import (
	"context"
	"log/slog"

	"keygen/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// KeyCountJob periodically reports how many keys are stored.
// Runs every minute and logs the current count.
type KeyCountJob struct {
	handler queries.ListSecretsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewKeyCountJob creates a new job reporting the stored key count.
func NewKeyCountJob(handler queries.ListSecretsQueryHandler, logger *slog.Logger) *KeyCountJob {
	return &KeyCountJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "key_count_job"),
	}
}

// Start begins the key count job to run every minute.
func (j *KeyCountJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		query := queries.NewListSecretsQuery()

		secrets, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Key count job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Stored key count", "count", len(secrets))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Key count job started (running every minute)")
	return nil
}

// Stop stops the key count job.
func (j *KeyCountJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Key count job stopped")
}
