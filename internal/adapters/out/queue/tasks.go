// Package queue provides the asynq-backed task queue adapter. The web process
// enqueues tasks through AsynqEnqueuer; a separate worker process consumes
// them with GenerateKeyTaskHandler.
package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TypeGenerateKey is the task type for deferred key generation.
const TypeGenerateKey = "keygen:generate"

// taskTimeout bounds how long a worker may spend on one task.
const taskTimeout = 360 * time.Second

// GenerateKeyPayload is the JSON payload of a deferred key generation task.
// The job ID exists only to correlate log lines between the web process and
// the worker; it carries no execution semantics.
type GenerateKeyPayload struct {
	JobID string `json:"job_id"`
}

// NewGenerateKeyTask builds a generate-key task with fire-and-forget
// semantics: no retries, so a failed or lost task is simply gone.
func NewGenerateKeyTask(jobID string) (*asynq.Task, error) {
	payload, err := json.Marshal(GenerateKeyPayload{JobID: jobID})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(TypeGenerateKey, payload,
		asynq.MaxRetry(0),
		asynq.Timeout(taskTimeout),
	), nil
}
