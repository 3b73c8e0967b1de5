// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"keygen/internal/pkg/guard"
)

var (
	ErrListSecretsQueryIsNotConstructed = errors.New(
		"ListSecretsQuery must be created via NewListSecretsQuery constructor",
	)
)

// ListSecretsQuery retrieves all stored secrets, newest first.
// This is a parameterless query: there is no pagination or filtering.
//
// Example:
//
//	query := queries.NewListSecretsQuery()
//	handler := queries.NewListSecretsQueryHandler(db)
//	secrets, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list secrets: %w", err)
//	}
type ListSecretsQuery struct {
	guard guard.ConstructorGuard
}

// NewListSecretsQuery creates a query to retrieve all stored secrets.
func NewListSecretsQuery() ListSecretsQuery {
	return ListSecretsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListSecretsQueryIsNotConstructed if validation fails.
func (q ListSecretsQuery) Validate() error {
	return q.guard.Validate(ErrListSecretsQueryIsNotConstructed)
}

// ListSecretsQueryResponse represents one secret in the read model.
type ListSecretsQueryResponse struct {
	ID      int64
	Created time.Time
	Key     string
}
