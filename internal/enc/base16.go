package enc

const hexAlphabet = "0123456789ABCDEF"

// hexCanonical folds input to upper case, discards hyphens, spaces and line
// breaks, and maps the commonly confused I, L, O and S onto the digits they
// resemble.
var hexCanonical = canonicalizer{
	fold: foldUpper,
	replacements: []replacement{
		{"-", ""},
		{" ", ""},
		{"\r", ""},
		{"\n", ""},
		{"I", "1"},
		{"L", "1"},
		{"O", "0"},
		{"S", "5"},
	},
}

// Base16Encoder is the plain hexadecimal codec. Encoded output uses upper
// case digits; decoding accepts either case.
type Base16Encoder struct {
	config Config
	width  uint
}

// NewBase16 builds a hexadecimal encoder.
func NewBase16(opts ...Option) (*Base16Encoder, error) {
	c := newConfig(opts...)
	if c.Alphabet == "" {
		c.Alphabet = hexAlphabet
	}
	if err := checkAlphabet(c.Alphabet, 16); err != nil {
		return nil, err
	}
	return &Base16Encoder{config: c, width: bitWidth(16)}, nil
}

func (b *Base16Encoder) Name() string {
	return "base16"
}

func (b *Base16Encoder) Encode(data []byte) (string, error) {
	return bitwiseEncode(data, b.config.Alphabet, b.width, b.config.LineLength, b.config.LineSeparator), nil
}

func (b *Base16Encoder) Decode(text string) ([]byte, error) {
	return bitwiseDecode(hexCanonical.apply(text), b.config.Alphabet, b.width, b.Name())
}
