package commands

import (
	"errors"

	"keygen/internal/pkg/guard"
)

var (
	ErrDeleteAllKeysCommandIsNotConstructed = errors.New(
		"DeleteAllKeysCommand must be created via NewDeleteAllKeysCommand constructor",
	)
)

// DeleteAllKeysCommand represents a request to remove every stored secret.
// There is no per-record deletion, no confirmation step, and no undo.
type DeleteAllKeysCommand struct {
	guard guard.ConstructorGuard
}

// NewDeleteAllKeysCommand creates a command to delete all stored keys.
func NewDeleteAllKeysCommand() DeleteAllKeysCommand {
	return DeleteAllKeysCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteAllKeysCommandIsNotConstructed if validation fails.
func (c DeleteAllKeysCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllKeysCommandIsNotConstructed)
}
