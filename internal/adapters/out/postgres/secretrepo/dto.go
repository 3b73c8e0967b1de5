// Package secretrepo provides the data transfer object and mapping functions
// for secret persistence. It implements the repository pattern for the secret
// aggregate, converting between the domain entity and its database row.
package secretrepo

import (
	"time"

	"keygen/internal/core/domain/model/secret"
)

// SecretDTO represents the database structure for persisting secrets.
// The id is assigned by the database on insert.
type SecretDTO struct {
	ID      int64     `gorm:"primaryKey;autoIncrement"`
	Created time.Time `gorm:"type:timestamptz;not null;index:idx_secrets_created,sort:desc"`
	Key     string    `gorm:"column:key;type:varchar(50);not null"`
}

// TableName specifies the database table name for secret entities.
// Overrides GORM's default naming convention to use "secrets" instead of "secret_dtos".
func (SecretDTO) TableName() string {
	return "secrets"
}

// fromDomain converts a secret domain entity to its database representation.
// The ID field is left at zero for unsaved secrets so the database assigns it.
func fromDomain(s *secret.Secret) SecretDTO {
	return SecretDTO{
		ID:      s.ID(),
		Created: s.Created(),
		Key:     s.Key(),
	}
}

// toDomain converts a database row to a secret domain entity.
func toDomain(dto SecretDTO) (*secret.Secret, error) {
	return secret.RestoreSecret(dto.ID, dto.Created, dto.Key)
}
