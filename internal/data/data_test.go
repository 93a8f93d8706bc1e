package data

import (
	"errors"
	"testing"

	"github.com/brendanberg/trilobyte/internal/enc"
	"github.com/brendanberg/trilobyte/internal/squash"
	"github.com/stretchr/testify/require"
)

func Test_DataIsolation(t *testing.T) {
	raw := []byte{0x01, 0x02, 0x03}
	d := New(raw)

	// neither the source slice nor handed-out copies alias the buffer
	raw[0] = 0xFF
	require.Equal(t, []byte{0x01, 0x02, 0x03}, d.Bytes())

	leaked := d.Bytes()
	leaked[1] = 0xFF
	require.Equal(t, []byte{0x01, 0x02, 0x03}, d.Bytes())
}

func Test_DataText(t *testing.T) {
	hex, err := enc.NewBase16()
	require.NoError(t, err)

	d := New([]byte{0xFF})
	text, err := d.Text(hex)
	require.NoError(t, err)
	require.Equal(t, "FF", text)

	back, err := FromText("ff", hex)
	require.NoError(t, err)
	require.True(t, d.Equal(back))

	_, err = FromText("bogus", hex)
	require.Error(t, err)
	require.True(t, errors.Is(err, enc.ErrIllegalCharacter))
}

func Test_DataCrossEncoding(t *testing.T) {
	words, err := enc.NewWords(nil)
	require.NoError(t, err)
	hex, err := enc.NewBase16()
	require.NoError(t, err)

	d, err := FromText("chicken yankee wolfram asparagus", words)
	require.NoError(t, err)

	text, err := d.Text(hex)
	require.NoError(t, err)
	require.Equal(t, "26FCF90B", text)
}

func Test_DataWithSquash(t *testing.T) {
	pipeline, err := squash.NewSquash()
	require.NoError(t, err)

	d := New([]byte("compress me compress me"))
	text, err := d.Text(pipeline)
	require.NoError(t, err)

	back, err := FromText(text, pipeline)
	require.NoError(t, err)
	require.True(t, d.Equal(back))

	// the pipeline's sentinel precondition surfaces through Text
	_, err = New([]byte{0x00}).Text(pipeline)
	require.Error(t, err)
	require.True(t, errors.Is(err, squash.ErrSentinelByte))
}

func Test_DataOperations(t *testing.T) {
	a := New([]byte{0x01, 0x02})
	b := New([]byte{0x03})

	require.Equal(t, 2, a.Len())
	require.True(t, a.Equal(New([]byte{0x01, 0x02})))
	require.False(t, a.Equal(b))

	c := a.Concat(b)
	require.Equal(t, []byte{0x01, 0x02, 0x03}, c.Bytes())

	require.Equal(t, []byte{0x02}, a.Slice(1, 2).Bytes())

	// replacement may change length
	r := c.Replace(1, 2, New([]byte{0xAA, 0xBB}))
	require.Equal(t, []byte{0x01, 0xAA, 0xBB, 0x03}, r.Bytes())

	// the original is untouched
	require.Equal(t, []byte{0x01, 0x02, 0x03}, c.Bytes())

	// an empty replacement deletes the range
	require.Equal(t, []byte{0x03}, c.Replace(0, 2, Data{}).Bytes())
}
