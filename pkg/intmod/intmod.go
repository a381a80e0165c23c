package intmod

import (
	"errors"
	"strconv"
)

// ErrNotInvertible is returned by Inverse when the value shares a factor
// with the modulus. Zero is never invertible.
var ErrNotInvertible = errors.New("intmod: value is not invertible modulo n")

// Modulus supplies the fixed modulus for an Int instantiation. Implementations
// are zero-size marker types whose Mod method returns a constant greater
// than 1.
type Modulus interface {
	comparable
	Mod() int64
}

// Int is an integer modulo M. Values are immutable; every operation returns
// a new Int. The stored representative is always in [0, M.Mod()).
//
// The zero value of Int[M] is the residue 0 and is ready to use.
type Int[M Modulus] struct {
	v int64
}

func modulus[M Modulus]() int64 {
	var m M
	return m.Mod()
}

// New returns v reduced modulo M. The reduction is a true mathematical
// modulo: negative inputs normalize into [0, N) as well, so New(-1) is the
// residue N-1.
func New[M Modulus](v int64) Int[M] {
	n := modulus[M]()
	v %= n
	if v < 0 {
		v += n
	}
	return Int[M]{v: v}
}

// Value returns the canonical representative in [0, N).
func (a Int[M]) Value() int64 {
	return a.v
}

// IsZero reports whether a is the residue 0.
func (a Int[M]) IsZero() bool {
	return a.v == 0
}

// Add returns a + b mod N.
func (a Int[M]) Add(b Int[M]) Int[M] {
	return Int[M]{v: (a.v + b.v) % modulus[M]()}
}

// Sub returns a - b mod N.
func (a Int[M]) Sub(b Int[M]) Int[M] {
	n := modulus[M]()
	return Int[M]{v: (a.v - b.v + n) % n}
}

// Neg returns -a mod N.
func (a Int[M]) Neg() Int[M] {
	if a.v == 0 {
		return a
	}
	return Int[M]{v: modulus[M]() - a.v}
}

// Mul returns a * b mod N. Representatives are bounded by the modulus, so
// the product cannot overflow int64 for any modulus below 2^31.
func (a Int[M]) Mul(b Int[M]) Int[M] {
	return Int[M]{v: (a.v * b.v) % modulus[M]()}
}

// Inverse returns x with a * x == 1 mod N. It exists exactly when
// gcd(a, N) = 1; otherwise Inverse returns ErrNotInvertible. For a prime
// modulus every value except zero has an inverse.
func (a Int[M]) Inverse() (Int[M], error) {
	// Extended Euclid on (a, N); x tracks the Bezout coefficient of a.
	r0, r1 := a.v, modulus[M]()
	x0, x1 := int64(1), int64(0)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		x0, x1 = x1, x0-q*x1
	}
	if r0 != 1 {
		return Int[M]{}, ErrNotInvertible
	}
	return New[M](x0), nil
}

// Equal reports whether a and b are the same residue.
func (a Int[M]) Equal(b Int[M]) bool {
	return a.v == b.v
}

// Cmp compares the canonical representatives, returning -1, 0, or +1.
func (a Int[M]) Cmp(b Int[M]) int {
	switch {
	case a.v < b.v:
		return -1
	case a.v > b.v:
		return +1
	default:
		return 0
	}
}

// String returns the decimal representative.
func (a Int[M]) String() string {
	return strconv.FormatInt(a.v, 10)
}
