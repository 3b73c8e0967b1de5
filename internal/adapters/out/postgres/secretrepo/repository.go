package secretrepo

import (
	"context"

	"keygen/internal/core/domain/model/secret"

	"gorm.io/gorm"
)

// GormSecretRepository implements SecretRepository using GORM.
type GormSecretRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormSecretRepository creates a new GORM secret repository.
func NewGormSecretRepository(db *gorm.DB, tracker aggregateTracker) *GormSecretRepository {
	return &GormSecretRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new secret to the database. The database assigns the surrogate
// id; the assigned value is used for aggregate tracking.
func (r *GormSecretRepository) Add(ctx context.Context, aggregate *secret.Secret) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(dto.ID, aggregate)
	return nil
}

// GetAll retrieves every stored secret ordered by creation time descending.
// Ties on the timestamp are broken by id so the ordering is stable.
func (r *GormSecretRepository) GetAll(ctx context.Context) ([]*secret.Secret, error) {
	var dtos []SecretDTO
	if err := r.db.WithContext(ctx).
		Order("created DESC").
		Order("id DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	secrets := make([]*secret.Secret, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, s)
	}

	return secrets, nil
}

// DeleteAll unconditionally removes every stored secret.
// Returns the number of rows removed.
func (r *GormSecretRepository) DeleteAll(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&SecretDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
