package shared

import (
	"crypto/rand"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// idLength matches the length of the base-36 tokens in existing state
// files, so fresh and imported records look alike.
const idLength = 11

// NewID returns a short random base-36 token. Uniqueness is probabilistic,
// which is acceptable for locally-owned, non-critical identifiers.
func NewID() string {
	buf := make([]byte, idLength)
	// rand.Read never fails on supported platforms
	_, _ = rand.Read(buf)
	for i, b := range buf {
		buf[i] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(buf)
}
