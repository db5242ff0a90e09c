package validate

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

// IsPaymentOrder checks a billing order number with the Luhn algorithm.
func IsPaymentOrder(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
