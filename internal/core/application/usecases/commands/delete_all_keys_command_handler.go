package commands

import (
	"context"
)

// DeleteAllKeysCommandHandler handles the bulk deletion of stored secrets.
type DeleteAllKeysCommandHandler struct {
	uowFactory SecretUoWFactory
}

// NewDeleteAllKeysCommandHandler creates a handler for bulk key deletion.
// Requires a SecretUoWFactory for transactional persistence operations.
func NewDeleteAllKeysCommandHandler(uowFactory SecretUoWFactory) DeleteAllKeysCommandHandler {
	return DeleteAllKeysCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delete-all command.
// Removes every stored secret within a transaction.
func (h *DeleteAllKeysCommandHandler) Handle(ctx context.Context, cmd DeleteAllKeysCommand) error {
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

	if _, err := uow.SecretRepository().DeleteAll(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
