package services

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderID produces an order identifier from a millisecond
// timestamp and a random suffix, e.g. "JS-1700000000000-123". It is
// unique with high probability only: no check against the store is
// performed, so a collision surfaces as a storage error on insert.
func GenerateOrderID() string {
	return fmt.Sprintf("JS-%d-%d", time.Now().UnixMilli(), 100+rand.Intn(900))
}
