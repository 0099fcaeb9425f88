package utils

import (
	"fmt"
	"sync"
	"time"
)

// ID generation uses millisecond timestamps ("item-1712345678901"). Creation is
// low-frequency, but two calls can still land in the same millisecond, so the
// last issued value is bumped forward under a lock to keep IDs unique within
// the process.

var (
	idMu     sync.Mutex
	lastIDMs int64
)

func nextIDMillis() int64 {
	idMu.Lock()
	defer idMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= lastIDMs {
		ms = lastIDMs + 1
	}
	lastIDMs = ms
	return ms
}

// GenerateItemID returns a new unique item identifier.
func GenerateItemID() string {
	return fmt.Sprintf("item-%d", nextIDMillis())
}

// GenerateRatingID returns a new unique rating identifier.
func GenerateRatingID() string {
	return fmt.Sprintf("rating-%d", nextIDMillis())
}
