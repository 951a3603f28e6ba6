package str

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// RandomKind selects the character pool Random draws from.
type RandomKind int

const (
	// RandomAlnum draws from lower/upper-case letters and digits.
	RandomAlnum RandomKind = iota
	// RandomAlpha draws from lower/upper-case letters.
	RandomAlpha
	// RandomHexdec draws from lower-case hexadecimal digits.
	RandomHexdec
	// RandomNumeric draws from digits 0-9.
	RandomNumeric
	// RandomNoZero draws from digits 1-9.
	RandomNoZero
	// RandomDistinct draws from characters that are hard to confuse
	// visually (no 0/O, 1/I/l, and similar pairs).
	RandomDistinct
)

const (
	poolAlnum    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	poolAlpha    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	poolHexdec   = "0123456789abcdef"
	poolNumeric  = "0123456789"
	poolNoZero   = "123456789"
	poolDistinct = "2345679ACDEFHJKLMNPRSTUVWXYZ"
)

// Random returns a string of length characters drawn uniformly at random
// (with replacement) from the pool selected by kind. Unknown kinds fall
// back to the alphanumeric pool; non-positive lengths return "".
func Random(kind RandomKind, length int) string {
	if length <= 0 {
		return ""
	}

	pool := poolAlnum
	switch kind {
	case RandomAlpha:
		pool = poolAlpha
	case RandomHexdec:
		pool = poolHexdec
	case RandomNumeric:
		pool = poolNumeric
	case RandomNoZero:
		pool = poolNoZero
	case RandomDistinct:
		pool = poolDistinct
	}

	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(pool[randIndex(len(pool))])
	}
	return b.String()
}

// UUID returns a random (version 4) UUID string.
func UUID() string {
	return uuid.NewString()
}

// randIndex returns a uniform random index in [0, n) from crypto/rand.
func randIndex(n int) int {
	if n <= 1 {
		return 0
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand only fails when the platform source is broken;
		// there is no useful fallback for token material.
		panic("str: crypto/rand unavailable: " + err.Error())
	}
	return int(idx.Int64())
}
