// Package data wraps raw byte strings in an immutable value type that
// converts to and from encoded text.
package data

import (
	"bytes"

	"github.com/brendanberg/trilobyte/internal/enc"
)

// Data is an immutable byte buffer. Every operation returns a fresh value
// and never aliases the input, so a Data handed out once can be shared
// freely. The zero value is an empty buffer.
type Data struct {
	bytes []byte
}

// New copies b into a fresh buffer. Later changes to b do not show through.
func New(b []byte) Data {
	out := make([]byte, len(b))
	copy(out, b)
	return Data{bytes: out}
}

// FromText decodes text with the given codec.
func FromText(text string, encoder enc.Encoder) (Data, error) {
	b, err := encoder.Decode(text)
	if err != nil {
		return Data{}, err
	}
	return Data{bytes: b}, nil
}

// Text renders the buffer with the given codec.
func (d Data) Text(encoder enc.Encoder) (string, error) {
	return encoder.Encode(d.bytes)
}

// Bytes returns a copy of the underlying bytes.
func (d Data) Bytes() []byte {
	out := make([]byte, len(d.bytes))
	copy(out, d.bytes)
	return out
}

// Len returns the number of bytes in the buffer.
func (d Data) Len() int {
	return len(d.bytes)
}

// Equal reports whether two buffers hold the same bytes.
func (d Data) Equal(other Data) bool {
	return bytes.Equal(d.bytes, other.bytes)
}

// Concat returns a new buffer holding d followed by other.
func (d Data) Concat(other Data) Data {
	out := make([]byte, 0, len(d.bytes)+len(other.bytes))
	out = append(out, d.bytes...)
	out = append(out, other.bytes...)
	return Data{bytes: out}
}

// Slice returns the half-open range [i, j) as a new buffer. Out-of-range
// indexes panic the way a slice expression does.
func (d Data) Slice(i, j int) Data {
	return New(d.bytes[i:j])
}

// Replace returns a copy of d with the range [i, j) replaced by other. The
// replacement does not have to match the length of the range it replaces.
func (d Data) Replace(i, j int, other Data) Data {
	out := make([]byte, 0, len(d.bytes)-(j-i)+len(other.bytes))
	out = append(out, d.bytes[:i]...)
	out = append(out, other.bytes...)
	out = append(out, d.bytes[j:]...)
	return Data{bytes: out}
}
