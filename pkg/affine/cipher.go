package affine

import "strings"

// Encrypt transforms plaintext under key, mapping each character c with
// residue x to the character with residue m*x + b. It returns ErrInvalidKey
// if the key's slope is zero and UnknownCharacterError if any byte of
// plaintext is outside the alphabet; on error no partial ciphertext is
// returned.
func Encrypt(key Key, plaintext string) (string, error) {
	if !key.Valid() {
		return "", ErrInvalidKey
	}

	m, b := key.Slope, key.Intercept

	var ct strings.Builder
	ct.Grow(len(plaintext))
	for i := 0; i < len(plaintext); i++ {
		x, ok := charToResidue(plaintext[i])
		if !ok {
			return "", &UnknownCharacterError{Byte: plaintext[i], Pos: i}
		}
		ct.WriteByte(residueToChar(m.Mul(x).Add(b)))
	}
	return ct.String(), nil
}

// Decrypt is the exact inverse of Encrypt: each ciphertext residue y maps
// back to x = (y - b) / m. It fails with ErrInvalidKey on a zero slope and
// UnknownCharacterError on bytes outside the alphabet, with the same
// all-or-nothing semantics as Encrypt.
func Decrypt(key Key, ciphertext string) (string, error) {
	if !key.Valid() {
		return "", ErrInvalidKey
	}

	mInv, err := key.Slope.Inverse()
	if err != nil {
		// Unreachable past the Valid check with a prime modulus, but the
		// arithmetic layer owns that contract, not this one.
		return "", err
	}
	bNeg := key.Intercept.Neg()

	var pt strings.Builder
	pt.Grow(len(ciphertext))
	for i := 0; i < len(ciphertext); i++ {
		y, ok := charToResidue(ciphertext[i])
		if !ok {
			return "", &UnknownCharacterError{Byte: ciphertext[i], Pos: i}
		}
		pt.WriteByte(residueToChar(mInv.Mul(y.Add(bNeg))))
	}
	return pt.String(), nil
}
