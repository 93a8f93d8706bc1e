package squash

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BWTForward(t *testing.T) {
	transformed, err := BWTForward([]byte("banana"))
	require.NoError(t, err)
	require.Equal(t, []byte("annb\x00aa"), transformed)

	// the empty input still carries its sentinel
	transformed, err = BWTForward([]byte{})
	require.NoError(t, err)
	require.Equal(t, []byte{Sentinel}, transformed)
}

func Test_BWTInverse(t *testing.T) {
	original, err := BWTInverse([]byte("annb\x00aa"))
	require.NoError(t, err)
	require.Equal(t, []byte("banana"), original)

	original, err = BWTInverse([]byte{Sentinel})
	require.NoError(t, err)
	require.Empty(t, original)
}

func Test_BWTRoundTrip(t *testing.T) {
	for _, vector := range [][]byte{
		{},
		[]byte("a"),
		[]byte("abracadabra abracadabra"),
		[]byte("The quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte("mississippi"), 7),
	} {
		transformed, err := BWTForward(vector)
		require.NoError(t, err)
		require.Len(t, transformed, len(vector)+1)

		original, err := BWTInverse(transformed)
		require.NoError(t, err)
		require.Equal(t, vector, original, "%q", vector)
	}
}

func Test_BWTSentinelRejected(t *testing.T) {
	_, err := BWTForward([]byte{0x41, 0x00, 0x42})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSentinelByte))
}

func Test_BWTInverseNeedsOneSentinel(t *testing.T) {
	// none at all
	_, err := BWTInverse([]byte("abc"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalString))

	// the empty transform has none either
	_, err = BWTInverse([]byte{})
	require.Error(t, err)

	// two is one too many
	_, err = BWTInverse([]byte{0x00, 0x41, 0x00})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIllegalString))
}
