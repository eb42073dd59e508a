package order

import (
	"errors"
	"fmt"

	"orderboard/internal/pkg/errs"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
	// created through the NewLineItem factory function.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is one position on an order: a named product with a quantity,
// optional add-ons and an optional preparation note.
//
// LineItem is a value object. The board never edits item contents; items
// are fixed once the order has been placed, and accessors return defensive
// copies of the add-on list to keep it that way.
type LineItem struct {
	name     string
	quantity int
	addOns   []string
	notes    string

	isConstructed bool
}

// NewLineItem creates a LineItem with validation.
//
// Parameters:
//   - name: Product name (must not be empty)
//   - quantity: Number of units (must be positive)
//   - addOns: Optional add-on names (may be nil)
//   - notes: Optional preparation note (may be empty)
//
// Returns:
//   - LineItem: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewLineItem(name string, quantity int, addOns []string, notes string) (LineItem, error) {
	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("line item name")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("line item quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	item := LineItem{
		name:          name,
		quantity:      quantity,
		notes:         notes,
		isConstructed: true,
	}
	if len(addOns) > 0 {
		item.addOns = make([]string, len(addOns))
		copy(item.addOns, addOns)
	}

	return item, nil
}

// Validate ensures the LineItem was created through NewLineItem.
func (i LineItem) Validate() error {
	if !i.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// Name returns the product name.
func (i LineItem) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i LineItem) Quantity() int {
	return i.quantity
}

// AddOns returns a copy of the add-on names. Returns nil when the item has
// no add-ons.
func (i LineItem) AddOns() []string {
	if i.addOns == nil {
		return nil
	}
	addOns := make([]string, len(i.addOns))
	copy(addOns, i.addOns)
	return addOns
}

// Notes returns the optional preparation note.
func (i LineItem) Notes() string {
	return i.notes
}
