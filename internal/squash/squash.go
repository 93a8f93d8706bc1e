// Package squash compresses byte strings for textual transport. A
// Burrows-Wheeler transform gathers repeated substrings into runs, a
// run-length pass shrinks the runs, and the result travels as base-64 text.
// The transform reserves one byte value as a sentinel, so input containing
// 0x00 cannot be compressed.
package squash

import (
	"github.com/brendanberg/trilobyte/internal/enc"
)

// Squash is the compression pipeline. It implements enc.Encoder, so it is
// usable anywhere a text codec is.
type Squash struct {
	base64 *enc.Base64Encoder
}

// NewSquash builds the pipeline. Options configure the base-64 transport
// stage: wrap length, line separator, high-index characters.
func NewSquash(opts ...enc.Option) (*Squash, error) {
	base64, err := enc.NewBase64(opts...)
	if err != nil {
		return nil, err
	}
	return &Squash{base64: base64}, nil
}

func (s *Squash) Name() string {
	return "squash"
}

// Compress returns the base-64 text of the run-length encoded
// Burrows-Wheeler transform of data.
func (s *Squash) Compress(data []byte) (string, error) {
	transformed, err := BWTForward(data)
	if err != nil {
		return "", err
	}
	return s.base64.Encode(RunLengthEncode(transformed))
}

// Decompress reverses Compress. An error from any stage surfaces unchanged.
func (s *Squash) Decompress(text string) ([]byte, error) {
	packed, err := s.base64.Decode(text)
	if err != nil {
		return nil, err
	}
	expanded, err := RunLengthDecode(packed)
	if err != nil {
		return nil, err
	}
	return BWTInverse(expanded)
}

// Encode adapts Compress to the enc.Encoder interface.
func (s *Squash) Encode(data []byte) (string, error) {
	return s.Compress(data)
}

// Decode adapts Decompress to the enc.Encoder interface.
func (s *Squash) Decode(text string) ([]byte, error) {
	return s.Decompress(text)
}
