// Package affine implements an affine substitution cipher over a fixed
// 97-symbol alphabet.
//
// The alphabet covers the upper- and lowercase letters, the digits, space,
// the common printable punctuation, tab, and newline. Each character maps to
// a residue modulo 97, the residue is pushed through y = m*x + b, and the
// result maps back to a character. Because 97 is prime, every key with a
// nonzero slope m is invertible and decryption is exact:
//
//	key, err := affine.GenerateKey(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ct, err := affine.Encrypt(key, "Hello, world!\n")
//	pt, err := affine.Decrypt(key, ct)
//
// Both transforms are pure per-character maps: output length equals input
// length and no state carries between positions. Inputs containing a byte
// outside the alphabet are rejected as a whole with UnknownCharacterError;
// no partial output is returned.
//
// # Security
//
// This is a classical substitution cipher, kept around for its mathematical
// structure, not its strength. A 97-symbol affine cipher falls to frequency
// analysis with a handful of ciphertext. Do not protect anything with it.
package affine
