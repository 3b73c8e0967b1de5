package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"keygen/internal/core/application/usecases/commands"

	"github.com/hibiken/asynq"
)

// SimulatedLatency is the fixed delay the worker sleeps before generating a
// key, standing in for an expensive operation.
const SimulatedLatency = 2 * time.Second

// GenerateKeyTaskHandler executes deferred key generation tasks on the worker
// side. It sleeps for the configured delay and then performs the same insert
// as the synchronous request path, through the same command handler.
type GenerateKeyTaskHandler struct {
	handler commands.GenerateKeyCommandHandler
	delay   time.Duration
	logger  *slog.Logger
}

// NewGenerateKeyTaskHandler creates a task handler with the standard
// simulated latency.
func NewGenerateKeyTaskHandler(handler commands.GenerateKeyCommandHandler, logger *slog.Logger) *GenerateKeyTaskHandler {
	return NewGenerateKeyTaskHandlerWithDelay(handler, SimulatedLatency, logger)
}

// NewGenerateKeyTaskHandlerWithDelay creates a task handler with an explicit
// delay. Used by tests to avoid waiting out the full simulated latency.
func NewGenerateKeyTaskHandlerWithDelay(
	handler commands.GenerateKeyCommandHandler,
	delay time.Duration,
	logger *slog.Logger,
) *GenerateKeyTaskHandler {
	return &GenerateKeyTaskHandler{
		handler: handler,
		delay:   delay,
		logger:  logger.With("component", "generate_key_task_handler"),
	}
}

// ProcessTask implements asynq.Handler.
func (h *GenerateKeyTaskHandler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerateKeyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Processing key generation job", "job_id", payload.JobID)

	// Simulate an expensive operation before the insert
	select {
	case <-time.After(h.delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	cmd := commands.NewGenerateKeyCommand()
	if err := h.handler.Handle(ctx, cmd); err != nil {
		h.logger.ErrorContext(ctx, "Key generation job failed", "job_id", payload.JobID, "error", err)
		return err
	}

	h.logger.InfoContext(ctx, "Key generation job completed", "job_id", payload.JobID)
	return nil
}
