package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListSecretsQueryHandler retrieves all stored secrets from the database.
// Uses a direct SQL query for the read side of the CQRS pattern.
type ListSecretsQueryHandler struct {
	db *gorm.DB
}

// NewListSecretsQueryHandler creates a handler for secret listing queries.
// Requires a GORM database connection for query execution.
func NewListSecretsQueryHandler(db *gorm.DB) ListSecretsQueryHandler {
	return ListSecretsQueryHandler{db: db}
}

// Handle executes the query to retrieve all secrets.
// Returns a slice of secret read models ordered by creation time descending.
// An empty table yields an empty slice, not an error.
func (h ListSecretsQueryHandler) Handle(
	ctx context.Context,
	query ListSecretsQuery,
) ([]ListSecretsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	secrets := make([]ListSecretsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created,
			key
		FROM secrets
		ORDER BY created DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s ListSecretsQueryResponse
		if err = rows.Scan(&s.ID, &s.Created, &s.Key); err != nil {
			return nil, err
		}
		secrets = append(secrets, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return secrets, nil
}
