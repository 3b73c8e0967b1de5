// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"keygen/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SecretRepoFactory provides access to the secret repository within a transaction.
	SecretRepoFactory interface {
		SecretRepository() ports.SecretRepository
	}

	// SecretUoW manages transactions for secret operations.
	SecretUoW interface {
		TxManager
		SecretRepoFactory
	}

	// SecretUoWFactory creates new secret unit of work instances.
	SecretUoWFactory interface {
		Create() SecretUoW
	}
)
