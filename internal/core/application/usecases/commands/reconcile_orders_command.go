package commands

import (
	"errors"

	"foodhub/internal/pkg/guard"
)

var ErrReconcileOrdersCommandIsNotConstructed = errors.New(
	"ReconcileOrdersCommand must be created via NewReconcileOrdersCommand constructor",
)

// ReconcileOrdersCommand sweeps every stored order through elapsed-time
// reconciliation. The background job issues it once per second so persisted
// state stays fresh between client polls; reads perform the same
// reconciliation on demand, so the sweep is an operational aid, not a
// separate progression mechanism.
type ReconcileOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileOrdersCommand creates a sweep command.
func NewReconcileOrdersCommand() ReconcileOrdersCommand {
	return ReconcileOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileOrdersCommand) Validate() error {
	return c.guard.Validate(ErrReconcileOrdersCommandIsNotConstructed)
}
