package affine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey indicates a key whose slope is zero. Such a key maps
	// every character to the same output and cannot be inverted.
	ErrInvalidKey = errors.New("affine: invalid key: slope must be nonzero")

	// ErrUnknownCharacter indicates input containing a byte outside the
	// 97-symbol alphabet. Use errors.As with *UnknownCharacterError to
	// recover the offending byte and its position.
	ErrUnknownCharacter = errors.New("affine: character outside alphabet")
)

// UnknownCharacterError reports the first input byte that is not part of the
// alphabet. It unwraps to ErrUnknownCharacter.
type UnknownCharacterError struct {
	Byte byte // the offending byte
	Pos  int  // its offset in the input
}

func (e *UnknownCharacterError) Error() string {
	return fmt.Sprintf("affine: byte %q at offset %d is outside the alphabet", e.Byte, e.Pos)
}

func (e *UnknownCharacterError) Unwrap() error {
	return ErrUnknownCharacter
}
