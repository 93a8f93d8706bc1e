package squash

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
)

// Sentinel marks the end of the input inside the rotation table. It sorts
// before every other byte, which is what pins the table's first row, so it
// must not occur in legitimate input.
const Sentinel byte = 0x00

// BWTForward computes the Burrows-Wheeler transform of src: append the
// sentinel, sort all cyclic rotations of the result in byte order and keep
// the final byte of each sorted rotation. The output is one byte longer than
// the input and is a permutation, not a compression, but it gathers repeated
// substrings into runs that the run-length pass can then shrink.
//
// https://en.wikipedia.org/wiki/Burrows%E2%80%93Wheeler_transform
func BWTForward(src []byte) ([]byte, error) {
	if bytes.IndexByte(src, Sentinel) >= 0 {
		return nil, errors.Wrapf(ErrSentinelByte, "input must not contain 0x%02x", Sentinel)
	}

	terminated := string(src) + string(Sentinel)
	n := len(terminated)

	// Rotations are slices of the doubled string, so the table costs n
	// string headers rather than n copies of the input.
	doubled := terminated + terminated
	rotations := make([]string, n)
	for i := 0; i < n; i++ {
		rotations[i] = doubled[i : i+n]
	}
	sort.Strings(rotations)

	out := make([]byte, n)
	for i, rotation := range rotations {
		out[i] = rotation[n-1]
	}
	return out, nil
}

// BWTInverse reconstructs the input of BWTForward from its output. The last
// column of the rotation table is all the information needed: counting symbol
// occurrences yields the sorted first column, and ranking equal symbols links
// each row to the row holding its predecessor. One backward walk then
// recovers the input without ever materializing the table. src must contain
// exactly one sentinel, which marks the row where the walk starts.
func BWTInverse(src []byte) ([]byte, error) {
	n := len(src)

	var counts [256]int
	primary := -1
	for i, b := range src {
		counts[b]++
		if b == Sentinel {
			primary = i
		}
	}
	if primary < 0 || counts[Sentinel] != 1 {
		return nil, errors.Wrapf(ErrIllegalString, "transform must contain exactly one sentinel byte, found %d", counts[Sentinel])
	}

	// starts[b] is the first row of symbol b in the sorted first column.
	var starts [256]int
	sum := 0
	for b, count := range counts {
		starts[b] = sum
		sum += count
	}

	// ranks[i] counts occurrences of src[i] strictly before position i.
	ranks := make([]int, n)
	var seen [256]int
	for i, b := range src {
		ranks[i] = seen[b]
		seen[b]++
	}

	out := make([]byte, n)
	row := primary
	for i := n - 1; i >= 0; i-- {
		out[i] = src[row]
		row = starts[src[row]] + ranks[row]
	}

	// The sentinel is the first byte the walk emits, so it sits at the end
	// of out and is not part of the payload.
	return out[:n-1], nil
}
