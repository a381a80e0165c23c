// Package intmod provides a small immutable integer type constrained to a
// fixed modulus.
//
// The modulus is carried by a type parameter rather than a struct field, so
// values of different moduli are distinct types and cannot be mixed by
// accident:
//
//	type Mod97 struct{}
//
//	func (Mod97) Mod() int64 { return 97 }
//
//	x := intmod.New[Mod97](-5) // normalized to 92
//	y := x.Mul(x).Add(intmod.New[Mod97](1))
//
// All operations return new values; nothing is mutated in place. Every value
// holds its canonical representative in [0, N), including values built from
// negative inputs.
//
// Inverse is defined whenever the value is coprime to the modulus; for a
// prime modulus that is every nonzero value. Calling Inverse on a
// non-invertible value returns ErrNotInvertible.
//
// The arithmetic here is not constant-time and the package is not intended
// for use where timing side channels matter.
package intmod
