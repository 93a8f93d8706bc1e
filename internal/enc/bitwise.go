package enc

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

// bitWidth returns log2(base) for power-of-two bases.
func bitWidth(base int) uint {
	return uint(bits.Len(uint(base))) - 1
}

// bitwiseEncode treats src as one continuous bit stream, most significant bit
// first, and maps each width-bit group onto a symbol from alphabet. A final
// group shorter than width is padded with zero bits on the low end. When
// lineLength is positive, lineSeparator is written out after every lineLength
// full symbols.
func bitwiseEncode(src []byte, alphabet string, width uint, lineLength int, lineSeparator string) string {
	var out strings.Builder
	out.Grow(len(src) * 8 / int(width))

	var window uint
	var nbits uint
	line := 0

	for _, b := range src {
		window = window<<8 | uint(b)
		nbits += 8
		for nbits >= width {
			nbits -= width
			out.WriteByte(alphabet[window>>nbits])
			window &= 1<<nbits - 1
			line++
			if lineLength > 0 && line == lineLength {
				out.WriteString(lineSeparator)
				line = 0
			}
		}
	}

	if nbits > 0 {
		out.WriteByte(alphabet[window<<(width-nbits)])
	}

	return out.String()
}

// bitwiseDecode folds each symbol's alphabet index into a rolling bit window
// and emits a byte whenever eight or more bits have accumulated. Any bits left
// over at the end must all be zero; a non-zero remainder means the input was
// truncated or padded with something other than zeros.
func bitwiseDecode(text string, alphabet string, width uint, name string) ([]byte, error) {
	out := make([]byte, 0, len(text)*int(width)/8)

	var window uint
	var nbits uint

	for _, ch := range text {
		idx := strings.IndexRune(alphabet, ch)
		if idx < 0 {
			return nil, errors.Wrapf(ErrIllegalCharacter, "%q is not a %s digit", ch, name)
		}
		window = window<<width | uint(idx)
		nbits += width
		for nbits >= 8 {
			nbits -= 8
			out = append(out, byte(window>>nbits))
			window &= 1<<nbits - 1
		}
	}

	if window != 0 {
		return nil, errors.Wrapf(ErrIllegalPadding, "%d leftover bits are not zero", nbits)
	}

	return out, nil
}
