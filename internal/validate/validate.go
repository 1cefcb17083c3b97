package validate

import (
	"strconv"
	"strings"
)

// Required trims s and reports whether anything is left. Checkout fields
// are rejected on blank, not on format.
func Required(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Qty parses a quantity form value. Anything unparseable or below 1 becomes
// 1; values above 50 are clamped to avoid abuse.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// ProductID parses an integer product id from an interactive control.
// Cart identifiers are integers everywhere; this is the only place a
// string form is accepted.
func ProductID(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// paymentModes are the accepted payment tags on the checkout form.
var paymentModes = map[string]bool{"cod": true, "card": true, "upi": true, "netbanking": true}

// PaymentMode normalizes a non-blank payment tag, falling back to cod for
// unrecognized values.
func PaymentMode(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if paymentModes[s] {
		return s
	}
	return "cod"
}
