package enc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Base32Encoder(t *testing.T) {
	encoder, err := NewBase32()
	require.NoError(t, err)

	encoded, err := encoder.Encode([]byte{0xFF})
	require.NoError(t, err)
	require.Equal(t, "ZW", encoded)

	decoded, err := encoder.Decode("ZW")
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, decoded)

	decoded, err = encoder.Decode("zw")
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, decoded)
}

func Test_Base32Confusables(t *testing.T) {
	encoder, err := NewBase32()
	require.NoError(t, err)

	encoded, err := encoder.Encode([]byte{0x08, 0x42})
	require.NoError(t, err)
	require.Equal(t, "1110", encoded)

	// i, l and o read as the digits they resemble
	decoded, err := encoder.Decode("li1O")
	require.NoError(t, err)
	require.Equal(t, []byte{0x08, 0x42}, decoded)
}

func Test_Base32IllegalCharacter(t *testing.T) {
	encoder, err := NewBase32()
	require.NoError(t, err)

	// U is excluded from Crockford's alphabet and has no substitution
	_, err = encoder.Decode("AU")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalCharacter))
}

func Test_Base32RoundTrip(t *testing.T) {
	encoder, err := NewBase32()
	require.NoError(t, err)

	encoded, err := encoder.Encode(encoderTest)
	require.NoError(t, err)
	require.NotContains(t, encoded, "U")
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, encoderTest, decoded)
}
