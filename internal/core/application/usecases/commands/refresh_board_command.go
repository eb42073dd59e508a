package commands

import (
	"errors"

	"orderboard/internal/pkg/guard"
)

var (
	ErrRefreshBoardCommandIsNotConstructed = errors.New(
		"RefreshBoardCommand must be created via NewRefreshBoardCommand constructor",
	)
)

// RefreshBoardCommand triggers one fetch-and-reconcile cycle for a board
// session. Both the poll jobs and the manual refresh endpoint issue it;
// there is no separate code path for either.
type RefreshBoardCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshBoardCommand creates a command to refresh the board from the
// store. This is a parameterless command; the fetch filter is part of the
// handler's configuration.
func NewRefreshBoardCommand() RefreshBoardCommand {
	return RefreshBoardCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshBoardCommandIsNotConstructed if validation fails.
func (c *RefreshBoardCommand) Validate() error {
	return c.guard.Validate(ErrRefreshBoardCommandIsNotConstructed)
}
