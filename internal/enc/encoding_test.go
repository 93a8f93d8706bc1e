package enc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

func Test_Lookup(t *testing.T) {
	for _, name := range []string{"base16", "BASE16", "hex", "base32", "base58", "Base64", "words", "dictionary", " base32 "} {
		encoder, err := Lookup(name)
		require.NoError(t, err, name)
		require.NotNil(t, encoder, name)
	}

	_, err := Lookup("base85")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown encoding")
}

func Test_EncoderRoundTrip(t *testing.T) {
	for _, name := range Names {
		encoder, err := Lookup(name)
		require.NoError(t, err, name)

		vector := encoderTest
		if name == "base58" {
			// base58 reads its input as one integer, so leading zero
			// bytes do not survive a round trip
			vector = encoderTest[4:]
		}

		encoded, err := encoder.Encode(vector)
		require.NoError(t, err, name)
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err, name)
		require.Equal(t, vector, decoded, name)
	}
}

func Test_EmptyInput(t *testing.T) {
	for _, name := range Names {
		encoder, err := Lookup(name)
		require.NoError(t, err, name)

		encoded, err := encoder.Encode([]byte{})
		require.NoError(t, err, name)
		require.Equal(t, "", encoded, name)

		decoded, err := encoder.Decode("")
		require.NoError(t, err, name)
		require.Empty(t, decoded, name)
	}
}

func Test_CheckAlphabet(t *testing.T) {
	_, err := NewBase16(WithAlphabet("0123456789ABCDE"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = NewBase16(WithAlphabet("0123456789ABCDEE"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	// sixteen bytes but only fifteen symbols
	_, err = NewBase16(WithAlphabet("0123456789ABCDÉ"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidAlphabet))

	_, err = NewBase16(WithAlphabet("0123456789abcdef"))
	require.NoError(t, err)
}
