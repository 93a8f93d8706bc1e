package enc

import (
	"strings"

	"github.com/pkg/errors"
)

const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// base64Canonical discards padding, line breaks and spaces. No case folding:
// the alphabet needs both cases.
var base64Canonical = canonicalizer{
	replacements: []replacement{
		{"\r", ""},
		{"\n", ""},
		{" ", ""},
		{"=", ""},
	},
}

// Base64Encoder is a configurable base-64 encoder. The two highest-index
// symbols, '+' and '/' in the standard alphabet, collide with reserved
// characters in URLs and file names and can be swapped out with
// WithHighIndexChars. Output carries '=' padding up to a multiple of four
// symbols.
type Base64Encoder struct {
	config Config
	width  uint
}

// NewBase64 builds a base-64 encoder. An explicit WithAlphabet wins over
// WithHighIndexChars.
func NewBase64(opts ...Option) (*Base64Encoder, error) {
	c := newConfig(opts...)
	if c.HighIndexChars == "" {
		c.HighIndexChars = DefaultHighIndexChars
	}
	if len(c.HighIndexChars) != 2 {
		return nil, errors.Wrapf(ErrInvalidAlphabet, "high-index characters must be exactly two symbols, got %q", c.HighIndexChars)
	}
	if c.Alphabet == "" {
		c.Alphabet = base64Alphabet[:62] + c.HighIndexChars
	}
	if err := checkAlphabet(c.Alphabet, 64); err != nil {
		return nil, err
	}
	return &Base64Encoder{config: c, width: bitWidth(64)}, nil
}

func (b *Base64Encoder) Name() string {
	return "base64"
}

// Encode pads the symbol stream so its length is a multiple of four. Three
// input bytes make four symbols exactly, so only the remainder of len(data)
// modulo three decides the padding run.
func (b *Base64Encoder) Encode(data []byte) (string, error) {
	text := bitwiseEncode(data, b.config.Alphabet, b.width, b.config.LineLength, b.config.LineSeparator)
	if pad := (3 - len(data)%3) % 3; pad > 0 {
		text += strings.Repeat("=", pad)
	}
	return text, nil
}

func (b *Base64Encoder) Decode(text string) ([]byte, error) {
	return bitwiseDecode(base64Canonical.apply(text), b.config.Alphabet, b.width, b.Name())
}
