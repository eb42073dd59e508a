package order

import (
	"fmt"

	"orderboard/internal/pkg/errs"
)

// Type classifies how an order is fulfilled.
// It is immutable for the lifetime of the order.
type Type int

const (
	// TypeUnknown represents an invalid or undefined order type.
	TypeUnknown Type = iota

	// TypeDineIn is an order consumed on the premises.
	TypeDineIn

	// TypeTakeaway is an order picked up by the customer.
	TypeTakeaway

	// TypeDelivery is an order delivered to the customer.
	TypeDelivery
)

func getTypeNames() map[Type]string {
	return map[Type]string{
		TypeUnknown:  "UNKNOWN",
		TypeDineIn:   "DINE_IN",
		TypeTakeaway: "TAKEAWAY",
		TypeDelivery: "DELIVERY",
	}
}

func getValidTypeNames() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	return map[Type]string{
		TypeDineIn:   "DINE_IN",
		TypeTakeaway: "TAKEAWAY",
		TypeDelivery: "DELIVERY",
	}
}

// TypeFromName converts a wire name (e.g. "DINE_IN") to a Type.
func TypeFromName(name string) (Type, error) {
	for t, typeName := range getValidTypeNames() {
		if typeName == name {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("order type is invalid",
		fmt.Errorf("%q is not a valid order type name", name))
}

// Validate checks if the Type value is valid.
// TypeUnknown (0) and any other values are invalid.
func (t Type) Validate() error {
	if _, ok := getValidTypeNames()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order type is invalid",
			fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

// String returns the wire name of the order type.
// Returns "UNKNOWN" for invalid values.
func (t Type) String() string {
	if name, ok := getTypeNames()[t]; ok {
		return name
	}
	return "UNKNOWN"
}
