package commands

import (
	"context"

	"foodhub/internal/core/ports"
)

// ClearOrdersCommandHandler empties the order store.
type ClearOrdersCommandHandler struct {
	repo ports.OrderRepository
}

// NewClearOrdersCommandHandler creates a handler for clearing the store.
func NewClearOrdersCommandHandler(repo ports.OrderRepository) ClearOrdersCommandHandler {
	return ClearOrdersCommandHandler{repo: repo}
}

// Handle removes every order and its history.
func (h ClearOrdersCommandHandler) Handle(ctx context.Context, cmd ClearOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.repo.Clear(ctx)
}
