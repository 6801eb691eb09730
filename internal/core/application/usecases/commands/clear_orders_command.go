package commands

import (
	"errors"

	"foodhub/internal/pkg/guard"
)

var ErrClearOrdersCommandIsNotConstructed = errors.New(
	"ClearOrdersCommand must be created via NewClearOrdersCommand constructor",
)

// ClearOrdersCommand removes every order and its history. Intended for test
// isolation, not production use.
type ClearOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewClearOrdersCommand creates a command to clear the entire store.
func NewClearOrdersCommand() ClearOrdersCommand {
	return ClearOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ClearOrdersCommand) Validate() error {
	return c.guard.Validate(ErrClearOrdersCommandIsNotConstructed)
}
