package commands

import (
	"context"

	"keygen/internal/core/domain/model/secret"
)

// GenerateKeyCommandHandler handles the business logic for key generation.
// Creates one Secret with a freshly generated key and persists it.
// The same handler serves both the synchronous request path and the
// deferred background job, so both produce identical effects.
type GenerateKeyCommandHandler struct {
	uowFactory SecretUoWFactory
}

// NewGenerateKeyCommandHandler creates a handler for key generation.
// Requires a SecretUoWFactory for transactional persistence operations.
func NewGenerateKeyCommandHandler(uowFactory SecretUoWFactory) GenerateKeyCommandHandler {
	return GenerateKeyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the key generation command.
// Generates a new secret and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *GenerateKeyCommandHandler) Handle(ctx context.Context, cmd GenerateKeyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	secretEntity, err := secret.NewSecret()
	if err != nil {
		return err
	}

	if err = uow.SecretRepository().Add(ctx, secretEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
