// Package utils holds small request-handling helpers shared across the
// app layer.
package utils

import (
	"crypto/rand"
	"fmt"
)

// GenerateUUID returns a random UUID v4 used as a request-correlation ID.
func GenerateUUID() string {
	b := make([]byte, 16)
	rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}
