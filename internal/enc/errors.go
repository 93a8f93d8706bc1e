package enc

import "errors"

// Decode and construction failures wrap one of these kinds; match them with
// errors.Is.
var (
	// ErrIllegalCharacter means a symbol or word outside the codec's alphabet
	ErrIllegalCharacter = errors.New("illegal character")
	// ErrIllegalPadding means leftover non-zero bits after decoding a fixed-width string
	ErrIllegalPadding = errors.New("illegal input: bad padding")
	// ErrInvalidAlphabet means an alphabet whose size or symbols do not fit the base
	ErrInvalidAlphabet = errors.New("invalid alphabet")
	// ErrInvalidWordList means a vocabulary that is not exactly 256 unique words
	ErrInvalidWordList = errors.New("invalid word list")
)
