package stalta

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-stalta/internal/testutil"
)

func BenchmarkClassicInto(b *testing.B) {
	sizes := []int{1 << 12, 1 << 16, 1 << 20}
	for _, n := range sizes {
		b.Run(fmt.Sprintf("N=%d", n), func(b *testing.B) {
			x := testutil.DeterministicNoise(1, 1, n)
			dst := make([]float64, n)
			b.SetBytes(int64(n * 8))
			b.ResetTimer()

			for range b.N {
				_, _ = ClassicInto(dst, x, 100, 1000)
			}
		})
	}
}

func BenchmarkStreamProcessBlock(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	s, err := NewStream(100, 1000)
	if err != nil {
		b.Fatal(err)
	}
	dst := make([]float64, len(x))
	b.SetBytes(int64(len(x) * 8))
	b.ResetTimer()

	for range b.N {
		_, _ = s.ProcessBlock(dst, x)
	}
}
