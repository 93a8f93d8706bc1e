// Package enc converts binary data to and from text representations that
// survive hostile transports: transcription by hand, by voice, or through
// systems that mangle case and whitespace. Decoding canonicalizes its input
// first, so commonly confused characters map back onto the symbol the writer
// meant.
package enc

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Encoder converts between raw bytes and a printable text representation.
// Implementations carry no mutable state after construction and are safe for
// concurrent use.
type Encoder interface {
	// Name is the registry name of this encoder, e.g. "base32"
	Name() string

	// Encode renders data as text. The plain text codecs always return a nil
	// error; implementations with failable preconditions report them here.
	Encode(data []byte) (string, error)

	// Decode is the reverse process of encoding. Input is canonicalized
	// before lookup, so separators and confusable characters are accepted.
	Decode(text string) ([]byte, error)
}

// Defaults for the fixed-width encoders.
const (
	DefaultLineLength     = 64
	DefaultLineSeparator  = "\r\n"
	DefaultHighIndexChars = "+/"
)

// Config carries the tunable settings shared by the encoders. Constructors
// start from the defaults above, so the zero value is never used directly.
type Config struct {
	// Alphabet overrides the encoder's default symbol table. Its length must
	// equal the encoder's base and no symbol may repeat.
	Alphabet string
	// LineLength is the number of symbols emitted between line separators.
	// Zero or negative disables wrapping.
	LineLength int
	// LineSeparator is written out after every LineLength symbols.
	LineSeparator string
	// HighIndexChars stands in for the last two symbols of the base-64
	// alphabet, which collide with reserved characters in some transports.
	HighIndexChars string
}

// Option adjusts a Config before an encoder is built from it.
type Option func(*Config)

// WithAlphabet replaces the encoder's default symbol table.
func WithAlphabet(alphabet string) Option {
	return func(c *Config) { c.Alphabet = alphabet }
}

// WithLineLength sets the number of symbols per line. Zero disables wrapping.
func WithLineLength(n int) Option {
	return func(c *Config) { c.LineLength = n }
}

// WithLineSeparator sets the string written between lines of encoded output.
func WithLineSeparator(sep string) Option {
	return func(c *Config) { c.LineSeparator = sep }
}

// WithHighIndexChars replaces the two highest-index base-64 symbols, "+/" in
// the standard alphabet.
func WithHighIndexChars(chars string) Option {
	return func(c *Config) { c.HighIndexChars = chars }
}

func newConfig(opts ...Option) Config {
	c := Config{
		LineLength:    DefaultLineLength,
		LineSeparator: DefaultLineSeparator,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// checkAlphabet verifies that the alphabet holds exactly base symbols with no
// repeats. Symbols must be single bytes, as the encoders index the alphabet
// by byte position.
func checkAlphabet(alphabet string, base int) error {
	if len(alphabet) != base {
		return errors.Wrapf(ErrInvalidAlphabet, "expected %d symbols, got %d", base, len(alphabet))
	}
	seen := make(map[rune]bool, base)
	for _, ch := range alphabet {
		if ch >= utf8.RuneSelf {
			return errors.Wrapf(ErrInvalidAlphabet, "symbol %q is not a single byte", ch)
		}
		if seen[ch] {
			return errors.Wrapf(ErrInvalidAlphabet, "symbol %q repeats", ch)
		}
		seen[ch] = true
	}
	return nil
}

// Names lists the encodings Lookup understands, aliases aside.
var Names = []string{"base16", "base32", "base58", "base64", "words"}

// Lookup resolves a codec by name, case insensitively. "hex" is an alias for
// base16 and "dictionary" for words. Options apply where the codec supports
// them; the word codec always uses its built-in vocabulary here.
func Lookup(name string, opts ...Option) (Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "base16", "hex":
		return NewBase16(opts...)
	case "base32":
		return NewBase32(opts...)
	case "base58":
		return NewBase58(opts...)
	case "base64":
		return NewBase64(opts...)
	case "words", "dictionary":
		return NewWords(nil)
	}
	return nil, errors.Errorf("unknown encoding '%s', expected one of: %s", name, strings.Join(Names, ", "))
}
