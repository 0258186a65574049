package binning

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-binning/internal/testutil"
)

func BenchmarkBinN(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		x, y := testutil.RandomSamples(1, n, 1000)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			for range b.N {
				if _, err := BinN(x, y, 32); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBinX(b *testing.B) {
	centers := make([]float64, 64)
	for i := range centers {
		centers[i] = -1000 + float64(i)*2000/63
	}
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		x, y := testutil.RandomSamples(1, n, 1000)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 16))

			for range b.N {
				if _, err := BinX(x, y, centers); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
