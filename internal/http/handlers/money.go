package handlers

import "strconv"

// FormatINR renders an integer rupee amount with thousands separators,
// e.g. 12000 -> "₹12,000". Registered as the "inr" template func.
func FormatINR(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-₹" + s
	}
	return "₹" + s
}
