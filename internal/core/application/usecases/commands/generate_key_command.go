package commands

import (
	"errors"

	"keygen/internal/pkg/guard"
)

var (
	ErrGenerateKeyCommandIsNotConstructed = errors.New(
		"GenerateKeyCommand must be created via NewGenerateKeyCommand constructor",
	)
)

// GenerateKeyCommand represents a request to generate and store one new
// secret key. The key value itself is produced by the domain model during
// handling; the command carries no parameters.
//
// Example:
//
//	cmd := commands.NewGenerateKeyCommand()
//	handler := commands.NewGenerateKeyCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to generate key: %w", err)
//	}
type GenerateKeyCommand struct {
	guard guard.ConstructorGuard
}

// NewGenerateKeyCommand creates a command to generate a new secret key.
func NewGenerateKeyCommand() GenerateKeyCommand {
	return GenerateKeyCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateKeyCommandIsNotConstructed if validation fails.
func (c GenerateKeyCommand) Validate() error {
	return c.guard.Validate(ErrGenerateKeyCommandIsNotConstructed)
}
