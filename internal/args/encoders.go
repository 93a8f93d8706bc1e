package args

import (
	"strings"

	"github.com/brendanberg/trilobyte/internal/enc"
	"github.com/brendanberg/trilobyte/internal/squash"
	"github.com/pkg/errors"
)

// EncoderOptions is the flag subset shared by the encode and decode commands.
// Commands embed it, so the flags appear on both under the same names.
type EncoderOptions struct {
	Encoding       string  `short:"e" long:"encoding"         env:"TRILOBYTE_ENCODING"         description:"Encoding to use: base16, base32, base58, base64, words or squash"`
	Wrap           *int    `short:"w" long:"wrap"             env:"TRILOBYTE_WRAP"             description:"Symbols per line of encoded output. 0 disables wrapping."`
	Separator      *string `          long:"separator"        env:"TRILOBYTE_SEPARATOR"        description:"Line separator for wrapped output"`
	HighIndexChars string  `          long:"high-index-chars" env:"TRILOBYTE_HIGH_INDEX_CHARS" description:"Two replacement symbols for the highest base-64 indexes, e.g. -_"`
}

// Build resolves the options into a ready codec, falling back to the file
// configuration and then to base64 for anything not given on the command
// line.
func (o EncoderOptions) Build() (enc.Encoder, error) {
	name := o.Encoding
	if name == "" {
		name = Config.Encoding
	}
	if name == "" {
		name = "base64"
	}

	var opts []enc.Option
	if wrap := firstInt(o.Wrap, Config.Wrap); wrap != nil {
		opts = append(opts, enc.WithLineLength(*wrap))
	}
	if sep := firstString(o.Separator, Config.Separator); sep != nil {
		opts = append(opts, enc.WithLineSeparator(*sep))
	}
	high := o.HighIndexChars
	if high == "" {
		high = Config.HighIndexChars
	}
	if high != "" {
		opts = append(opts, enc.WithHighIndexChars(high))
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "squash":
		return squash.NewSquash(opts...)
	case "words", "dictionary":
		if len(Config.Words) > 0 {
			return enc.NewWords(Config.Words)
		}
		return enc.NewWords(nil)
	case "base16", "hex", "base32", "base58", "base64":
		return enc.Lookup(name, opts...)
	}

	return nil, errors.Errorf("unknown encoding '%s', expected one of: %s, squash", name, strings.Join(enc.Names, ", "))
}

func firstInt(vals ...*int) *int {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}

func firstString(vals ...*string) *string {
	for _, v := range vals {
		if v != nil {
			return v
		}
	}
	return nil
}
