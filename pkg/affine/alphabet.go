package affine

import "github.com/MathNerdGamer/affine-cipher/pkg/intmod"

// Mod97 is the modulus marker for the cipher's residue type. 97 is prime,
// which is what makes every nonzero slope invertible.
type Mod97 struct{}

// Mod returns 97.
func (Mod97) Mod() int64 { return 97 }

// Z97 is an integer modulo 97, the residue type the cipher works in.
type Z97 = intmod.Int[Mod97]

// Z returns v reduced modulo 97.
func Z(v int64) Z97 {
	return intmod.New[Mod97](v)
}

// alphabet lists the 97 cipher symbols in residue order. The order is part
// of the cipher definition: position i IS the residue of the character, so
// reordering it changes every mapping.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" ~-=!@#$%^&*()_+[];',./{}:\"<>?`\\|\t\n"

// residueOf maps a byte to its alphabet position, or -1 for bytes outside
// the alphabet. Built once at init; read-only afterwards.
var residueOf [256]int8

func init() {
	for i := range residueOf {
		residueOf[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		residueOf[alphabet[i]] = int8(i)
	}
}

// charToResidue returns the residue of c, or false if c is not in the
// alphabet.
func charToResidue(c byte) (Z97, bool) {
	r := residueOf[c]
	if r < 0 {
		return Z97{}, false
	}
	return Z(int64(r)), true
}

// residueToChar returns the character at residue r. Always in range: r
// carries the [0, 97) invariant.
func residueToChar(r Z97) byte {
	return alphabet[r.Value()]
}
