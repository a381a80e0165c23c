package affine

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Key is an affine cipher key. Slope is the multiplicative part m and
// Intercept the additive part b of y = m*x + b. Keys are immutable value
// types; Encrypt and Decrypt never modify them.
type Key struct {
	Slope     Z97
	Intercept Z97
}

// NewKey builds a key from raw integers, normalizing both parts modulo 97.
// Out-of-range and negative inputs are reduced rather than rejected, so
// NewKey(7+97, -95) and NewKey(7, 2) are the same key.
func NewKey(slope, intercept int64) Key {
	return Key{Slope: Z(slope), Intercept: Z(intercept)}
}

// Valid reports whether the key can encrypt and decrypt. The only invalid
// keys are those with slope 0: since 97 is prime, every other slope has a
// multiplicative inverse.
func (k Key) Valid() bool {
	return !k.Slope.IsZero()
}

// String renders the key as "(m, b)". Affine keys are not secrets worth
// redacting; see the package documentation.
func (k Key) String() string {
	return fmt.Sprintf("(%v, %v)", k.Slope, k.Intercept)
}

// GenerateKey draws a uniformly random valid key from rnd: slope from
// [1, 96], intercept from [0, 96]. A nil rnd uses crypto/rand.Reader. The
// returned key is valid by construction; the only error case is a failing
// reader.
//
// Passing a deterministic reader yields a deterministic key, which is how
// the tests drive this function.
func GenerateKey(rnd io.Reader) (Key, error) {
	if rnd == nil {
		rnd = rand.Reader
	}

	m, err := rand.Int(rnd, big.NewInt(96))
	if err != nil {
		return Key{}, fmt.Errorf("affine: generate key: %w", err)
	}
	b, err := rand.Int(rnd, big.NewInt(97))
	if err != nil {
		return Key{}, fmt.Errorf("affine: generate key: %w", err)
	}

	// m is uniform on [0, 95]; shifting by one excludes the zero slope
	// without biasing the draw.
	return Key{Slope: Z(m.Int64() + 1), Intercept: Z(b.Int64())}, nil
}
