package queue

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
)

// AsynqEnqueuer implements ports.Enqueuer using an asynq client.
// Enqueue returns as soon as Redis accepts the task; execution happens later
// in the worker process.
type AsynqEnqueuer struct {
	client *asynq.Client
	logger *slog.Logger
}

// NewAsynqEnqueuer creates an enqueuer backed by the given asynq client.
func NewAsynqEnqueuer(client *asynq.Client, logger *slog.Logger) *AsynqEnqueuer {
	return &AsynqEnqueuer{
		client: client,
		logger: logger.With("component", "enqueuer"),
	}
}

// EnqueueGenerateKey schedules a deferred key generation job.
func (e *AsynqEnqueuer) EnqueueGenerateKey(ctx context.Context, jobID string) error {
	task, err := NewGenerateKeyTask(jobID)
	if err != nil {
		return err
	}

	info, err := e.client.EnqueueContext(ctx, task)
	if err != nil {
		return err
	}

	e.logger.InfoContext(ctx, "Enqueued key generation job",
		"job_id", jobID,
		"task_id", info.ID,
		"queue", info.Queue,
	)
	return nil
}
