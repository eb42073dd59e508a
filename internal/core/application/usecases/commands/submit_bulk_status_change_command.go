package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var (
	ErrSubmitBulkStatusChangeCommandIsNotConstructed = errors.New(
		"SubmitBulkStatusChangeCommand must be created via NewSubmitBulkStatusChangeCommand constructor",
	)
)

// SubmitBulkStatusChangeCommand requests moving every currently selected
// order to one target status. Membership is captured at handling time:
// selection changes made while submissions are in flight do not affect the
// batch.
type SubmitBulkStatusChangeCommand struct { //nolint:recvcheck //using for validation
	target order.Status

	guard guard.ConstructorGuard
}

// NewSubmitBulkStatusChangeCommand creates a command to change the status
// of all selected orders. Validates only that the target is a defined
// status; per-order legality is decided at handling time.
func NewSubmitBulkStatusChangeCommand(target order.Status) (SubmitBulkStatusChangeCommand, error) {
	command := SubmitBulkStatusChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTarget(target); err != nil {
		return SubmitBulkStatusChangeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitBulkStatusChangeCommandIsNotConstructed if validation fails.
func (c SubmitBulkStatusChangeCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBulkStatusChangeCommandIsNotConstructed)
}

// Target returns the requested target status.
func (c SubmitBulkStatusChangeCommand) Target() order.Status {
	return c.target
}

func (c *SubmitBulkStatusChangeCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
