package squash

import "errors"

var (
	// ErrSentinelByte means input to the forward transform already contains
	// the sentinel byte
	ErrSentinelByte = errors.New("sentinel byte in input")
	// ErrIllegalString means a run-length stream with an unrecognized tag
	// byte, or a transform without exactly one sentinel
	ErrIllegalString = errors.New("illegal input string")
)
