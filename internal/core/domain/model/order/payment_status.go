package order

import (
	"fmt"

	"orderboard/internal/pkg/errs"
)

// PaymentStatus reflects the settlement state of an order as reported by
// the external store. The board never computes money; it only carries this
// value through for filtering and display.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid indicates payment has not been settled.
	PaymentUnpaid

	// PaymentPaid indicates payment has been settled.
	PaymentPaid

	// PaymentRefunded indicates a settled payment was returned.
	PaymentRefunded
)

func getPaymentStatusNames() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:  "UNKNOWN",
		PaymentUnpaid:   "UNPAID",
		PaymentPaid:     "PAID",
		PaymentRefunded: "REFUNDED",
	}
}

func getValidPaymentStatusNames() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentUnpaid:   "UNPAID",
		PaymentPaid:     "PAID",
		PaymentRefunded: "REFUNDED",
	}
}

// PaymentStatusFromName converts a wire name (e.g. "PAID") to a PaymentStatus.
func PaymentStatusFromName(name string) (PaymentStatus, error) {
	for p, paymentName := range getValidPaymentStatusNames() {
		if paymentName == name {
			return p, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid payment status name", name))
}

// Validate checks if the PaymentStatus value is valid.
// PaymentUnknown (0) and any other values are invalid.
func (p PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the wire name of the payment status.
// Returns "UNKNOWN" for invalid values.
func (p PaymentStatus) String() string {
	if name, ok := getPaymentStatusNames()[p]; ok {
		return name
	}
	return "UNKNOWN"
}
