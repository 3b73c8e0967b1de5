// Package ports defines repository and infrastructure interfaces for the
// secret domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"keygen/internal/core/domain/model/secret"
)

// SecretRepository defines the persistence contract for secret aggregates.
// Secrets are write-once: there is no update path, and deletion is bulk-only.
type SecretRepository interface {
	// Add persists a new secret to storage. The database assigns the
	// surrogate id and the creation timestamp is taken from the aggregate.
	Add(ctx context.Context, s *secret.Secret) error

	// GetAll retrieves every stored secret ordered by creation time
	// descending (newest first).
	GetAll(ctx context.Context) ([]*secret.Secret, error)

	// DeleteAll unconditionally removes every stored secret and returns
	// the number of rows removed.
	DeleteAll(ctx context.Context) (int64, error)
}
