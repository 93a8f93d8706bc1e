package enc

const crockfordAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// crockfordCanonical folds to upper case, discards hyphens, spaces and line
// breaks, and maps I and L onto 1 and O onto 0. S stays a letter here, unlike
// in the hexadecimal table: the base-32 alphabet needs it as a digit of its
// own.
var crockfordCanonical = canonicalizer{
	fold: foldUpper,
	replacements: []replacement{
		{"-", ""},
		{" ", ""},
		{"\r", ""},
		{"\n", ""},
		{"I", "1"},
		{"L", "1"},
		{"O", "0"},
	},
}

// Base32Encoder implements Doug Crockford's base-32 encoding. The alphabet
// leaves out I, L, O and U; decoding maps the excluded look-alikes back onto
// the digits a human reader would have meant, so a handwritten "iL0" still
// decodes.
//
// https://www.crockford.com/base32.html
type Base32Encoder struct {
	config Config
	width  uint
}

// NewBase32 builds a Crockford base-32 encoder.
func NewBase32(opts ...Option) (*Base32Encoder, error) {
	c := newConfig(opts...)
	if c.Alphabet == "" {
		c.Alphabet = crockfordAlphabet
	}
	if err := checkAlphabet(c.Alphabet, 32); err != nil {
		return nil, err
	}
	return &Base32Encoder{config: c, width: bitWidth(32)}, nil
}

func (b *Base32Encoder) Name() string {
	return "base32"
}

func (b *Base32Encoder) Encode(data []byte) (string, error) {
	return bitwiseEncode(data, b.config.Alphabet, b.width, b.config.LineLength, b.config.LineSeparator), nil
}

func (b *Base32Encoder) Decode(text string) ([]byte, error) {
	return bitwiseDecode(crockfordCanonical.apply(text), b.config.Alphabet, b.width, b.Name())
}
