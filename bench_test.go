package sha3

import (
	"testing"

	"github.com/codahale/sha3/internal/testdata"
)

func benchmarkHash(b *testing.B, newHasher func() *Hasher) {
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			data := make([]byte, size.N)
			out := make([]byte, newHasher().Size())
			b.SetBytes(int64(size.N))
			b.ReportAllocs()
			for b.Loop() {
				h := newHasher()
				_, _ = h.Write(data)
				_, _ = h.Read(out)
			}
		})
	}
}

func BenchmarkSHA3_256(b *testing.B) {
	benchmarkHash(b, New256)
}

func BenchmarkSHA3_512(b *testing.B) {
	benchmarkHash(b, New512)
}

func BenchmarkLegacyKeccak256(b *testing.B) {
	benchmarkHash(b, NewLegacyKeccak256)
}

func BenchmarkSHAKE128(b *testing.B) {
	benchmarkHash(b, NewSHAKE128)
}

func BenchmarkSHAKE128Squeeze(b *testing.B) {
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			out := make([]byte, size.N)
			b.SetBytes(int64(size.N))
			b.ReportAllocs()
			for b.Loop() {
				h := NewSHAKE128()
				_, _ = h.Read(out)
			}
		})
	}
}
