package cart

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentType enumerates how a confirmed order is paid.
type PaymentType int

const (
	// PaymentUnknown represents an invalid or undefined payment type.
	PaymentUnknown PaymentType = iota

	// PaymentCash is cash on delivery.
	PaymentCash

	// PaymentCard is card payment.
	PaymentCard
)

func getPaymentTypeStrings() map[PaymentType]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentType]string{
		PaymentCash: "CASH",
		PaymentCard: "CARD",
	}
}

// PaymentTypeFromString parses the symbolic wire name of a payment type.
func PaymentTypeFromString(s string) (PaymentType, error) {
	for paymentType, name := range getPaymentTypeStrings() {
		if name == s {
			return paymentType, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentType",
		fmt.Errorf("%q is not a valid payment type", s))
}

// Validate checks if the PaymentType value is valid.
func (p PaymentType) Validate() error {
	if _, ok := getPaymentTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// String returns the symbolic name of the payment type, e.g. "CASH".
func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
