package squash

import "github.com/pkg/errors"

// Run-length unit layout. A byte below 127 stands for itself. Bytes 127 and
// above are split into two nibble-tagged bytes, 1110hhhh then 1100llll, so
// every tag is recognizable by its own high bits. A run of 2 through 65
// identical bytes is announced by a 10llllll prefix holding the length minus
// two; the prefix applies to the literal or escape pair that follows it.
const (
	rleRunTag    = 0x80 // 10llllll, run of l+2 copies of the next unit
	rleHighTag   = 0xE0 // 1110hhhh, high nibble of an escaped byte
	rleLowTag    = 0xC0 // 1100llll, low nibble of an escaped byte
	rleMaxRun    = 65
	rleEscapeMin = 127 // lowest byte value that needs escaping
)

// RunLengthEncode compresses runs of identical bytes. Runs longer than 65
// are cut into full-length units: 65 identical bytes take one prefixed unit,
// 66 take a prefixed unit plus a plain one.
func RunLengthEncode(src []byte) []byte {
	out := make([]byte, 0, len(src))

	for i := 0; i < len(src); {
		b := src[i]
		run := 1
		for i+run < len(src) && src[i+run] == b && run < rleMaxRun {
			run++
		}

		if run >= 2 {
			out = append(out, byte(rleRunTag|(run-2)))
		}
		if b >= rleEscapeMin {
			out = append(out, rleHighTag|b>>4, rleLowTag|b&0x0F)
		} else {
			out = append(out, b)
		}

		i += run
	}

	return out
}

// RunLengthDecode expands a run-length stream. A run prefix applies to the
// next literal or completed escape pair; a staged high nibble survives until
// a low-nibble byte completes it, so a bare low-nibble byte completes
// against zero. Tag bytes of the form 1101xxxx or 1111xxxx match no unit and
// are rejected.
func RunLengthDecode(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	repeat := 0
	var staged byte

	emit := func(b byte) {
		if repeat == 0 {
			out = append(out, b)
		} else {
			for n := 0; n < repeat; n++ {
				out = append(out, b)
			}
		}
		repeat = 0
	}

	for i, b := range src {
		switch {
		case b&0x80 == 0:
			emit(b)
		case b&0xF0 == rleHighTag:
			staged = (b & 0x0F) << 4
		case b&0xF0 == rleLowTag:
			emit(staged | b&0x0F)
		case b&0xC0 == rleRunTag:
			repeat = int(b&0x3F) + 2
		default:
			return nil, errors.Wrapf(ErrIllegalString, "unrecognized tag byte 0x%02x at offset %d", b, i)
		}
	}

	return out, nil
}
