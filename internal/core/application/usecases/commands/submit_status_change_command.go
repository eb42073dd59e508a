package commands

import (
	"errors"

	"orderboard/internal/core/domain/model/kernel"
	"orderboard/internal/core/domain/model/order"
	"orderboard/internal/pkg/guard"
)

var (
	ErrSubmitStatusChangeCommandIsNotConstructed = errors.New(
		"SubmitStatusChangeCommand must be created via NewSubmitStatusChangeCommand constructor",
	)
)

// SubmitStatusChangeCommand requests moving one order to a target status.
// The change is applied optimistically to the board view before the store
// round trip and rolled back if the store rejects it.
//
// Example:
//
//	cmd, err := NewSubmitStatusChangeCommand(orderID, order.Accepted)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	outcome, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %s: %s", orderID, outcome.Kind)
type SubmitStatusChangeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewSubmitStatusChangeCommand creates a command to change one order's status.
// Validates that the order ID is valid and the target is a defined status.
// Legality of the workflow edge is checked at handling time against the
// order's current status, not here.
func NewSubmitStatusChangeCommand(orderID kernel.UUID, target order.Status) (SubmitStatusChangeCommand, error) {
	command := SubmitStatusChangeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
	); err != nil {
		return SubmitStatusChangeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitStatusChangeCommandIsNotConstructed if validation fails.
func (c SubmitStatusChangeCommand) Validate() error {
	return c.guard.Validate(ErrSubmitStatusChangeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to change.
func (c SubmitStatusChangeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested target status.
func (c SubmitStatusChangeCommand) Target() order.Status {
	return c.target
}

func (c *SubmitStatusChangeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitStatusChangeCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
