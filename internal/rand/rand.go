// Package rand generates short random strings for temp file suffixes and
// test fixtures. Not for secrets.
package rand

import (
	"math/rand"
	"sync"
	"time"
)

const letters = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	mu  sync.Mutex
	src = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// LetterBytes returns n random bytes in the [a-z0-9] range.
func LetterBytes(n int) []byte {
	b := make([]byte, n)
	mu.Lock()
	for i := range b {
		b[i] = letters[src.Intn(len(letters))]
	}
	mu.Unlock()
	return b
}

// LetterString returns a random string of length n in the [a-z0-9] range.
func LetterString(n int) string {
	return string(LetterBytes(n))
}
