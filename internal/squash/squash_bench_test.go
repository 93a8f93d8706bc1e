package squash

import (
	"bytes"
	"strings"
	"testing"

	"github.com/brendanberg/trilobyte/internal/enc"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
)

// benchText is the kind of input the pipeline exists for: repetitive ASCII
// free of the sentinel byte.
var benchText = []byte(strings.Repeat("the quick brown fox jumps over the lazy dog. ", 20))

func Benchmark_SquashCompress(b *testing.B) {
	squash, err := NewSquash()
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		if _, err := squash.Compress(benchText); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_SquashDecompress(b *testing.B) {
	squash, err := NewSquash()
	if err != nil {
		b.Fatal(err)
	}
	compressed, err := squash.Compress(benchText)
	if err != nil {
		b.Fatal(err)
	}
	b.SetBytes(int64(len(benchText)))
	for i := 0; i < b.N; i++ {
		if _, err := squash.Decompress(compressed); err != nil {
			b.Fatal(err)
		}
	}
}

// Benchmark_CompressionRatio sizes the pipeline up against general-purpose
// compressors over the same input. Squash pays for the text-safe output and
// the byte-granular transform, so it will not win; the ratio metric shows
// what that costs.
func Benchmark_CompressionRatio(b *testing.B) {
	b.Run("squash", func(b *testing.B) {
		squash, err := NewSquash(enc.WithLineLength(0))
		if err != nil {
			b.Fatal(err)
		}
		var out string
		for i := 0; i < b.N; i++ {
			if out, err = squash.Compress(benchText); err != nil {
				b.Fatal(err)
			}
		}
		b.ReportMetric(float64(len(out))/float64(len(benchText)), "ratio")
	})

	b.Run("flate", func(b *testing.B) {
		var buf bytes.Buffer
		for i := 0; i < b.N; i++ {
			buf.Reset()
			w, err := flate.NewWriter(&buf, flate.DefaultCompression)
			if err != nil {
				b.Fatal(err)
			}
			if _, err := w.Write(benchText); err != nil {
				b.Fatal(err)
			}
			if err := w.Close(); err != nil {
				b.Fatal(err)
			}
		}
		b.ReportMetric(float64(buf.Len())/float64(len(benchText)), "ratio")
	})

	b.Run("zstd", func(b *testing.B) {
		w, err := zstd.NewWriter(nil)
		if err != nil {
			b.Fatal(err)
		}
		defer w.Close()
		var out []byte
		for i := 0; i < b.N; i++ {
			out = w.EncodeAll(benchText, out[:0])
		}
		b.ReportMetric(float64(len(out))/float64(len(benchText)), "ratio")
	})
}
