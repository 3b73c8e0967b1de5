package ports

import "context"

// Enqueuer is the contract for handing work to an external task queue.
// The concrete implementation talks to a specific queuing technology;
// enqueueing returns as soon as the task is accepted by the queue, before
// any worker has executed it.
type Enqueuer interface {
	// EnqueueGenerateKey schedules a deferred key generation job identified
	// by jobID. The jobID is used only for log correlation between the web
	// process and the worker.
	EnqueueGenerateKey(ctx context.Context, jobID string) error
}
