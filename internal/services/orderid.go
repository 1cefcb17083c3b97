package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// orderIDPrefix tags every order id with the store's initials.
const orderIDPrefix = "VAG"

// GenerateOrderID builds a human-readable order id:
// VAG-YYYYMMDD-HHMMSS-NNNN with NNNN uniform in [1000,9999].
// Not cryptographically secure and not collision-checked.
func GenerateOrderID(now time.Time) string {
	suffix := 1000 + rand.IntN(9000)
	return fmt.Sprintf("%s-%s-%s-%04d", orderIDPrefix, now.Format("20060102"), now.Format("150405"), suffix)
}
