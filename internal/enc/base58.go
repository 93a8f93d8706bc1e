package enc

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

const flickrAlphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// base58Canonical only discards hyphens and spaces. Both letter cases are
// digits in their own right, so there is no folding and no confusable
// substitution: a symbol outside the alphabet is an error.
var base58Canonical = canonicalizer{
	replacements: []replacement{
		{"-", ""},
		{" ", ""},
	},
}

// Base58Encoder implements Flickr's base-58 encoding, the alphabet short URLs
// use. It keeps both letter cases and leaves out the confusables 0, O, I and
// l entirely. Fifty-eight is not a power of two, so this encoder works
// through an arbitrary-precision integer instead of the bit window the other
// bases share: the input is one big-endian number, and leading zero bytes do
// not survive a round trip.
//
// https://www.flickr.com/groups/api/discuss/72157616713786392/
type Base58Encoder struct {
	alphabet string
}

// NewBase58 builds a base-58 encoder. Line wrapping options do not apply.
func NewBase58(opts ...Option) (*Base58Encoder, error) {
	c := newConfig(opts...)
	if c.Alphabet == "" {
		c.Alphabet = flickrAlphabet
	}
	if err := checkAlphabet(c.Alphabet, 58); err != nil {
		return nil, err
	}
	return &Base58Encoder{alphabet: c.Alphabet}, nil
}

func (b *Base58Encoder) Name() string {
	return "base58"
}

// Encode converts data, read as one big-endian unsigned integer, to base 58
// by repeated division. No digit is ever emitted for the value zero: an empty
// or all-zero buffer encodes as the empty string.
func (b *Base58Encoder) Encode(data []byte) (string, error) {
	value := new(big.Int).SetBytes(data)
	base := big.NewInt(int64(len(b.alphabet)))
	digit := new(big.Int)

	// Digits come out least significant first.
	out := make([]byte, 0, len(data)*2)
	for value.Sign() > 0 {
		value.QuoRem(value, base, digit)
		out = append(out, b.alphabet[digit.Int64()])
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// Decode folds each digit into an accumulator, rightmost character least
// significant, and rewrites the result as its shortest big-endian byte
// sequence. The empty string decodes to an empty buffer.
func (b *Base58Encoder) Decode(text string) ([]byte, error) {
	value := new(big.Int)
	base := big.NewInt(int64(len(b.alphabet)))

	for _, ch := range base58Canonical.apply(text) {
		idx := strings.IndexRune(b.alphabet, ch)
		if idx < 0 {
			return nil, errors.Wrapf(ErrIllegalCharacter, "%q is not a %s digit", ch, b.Name())
		}
		value.Mul(value, base)
		value.Add(value, big.NewInt(int64(idx)))
	}

	return value.Bytes(), nil
}
