package describe

import (
	"math"
	"strconv"
	"testing"
)

func makeBenchValues(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 + math.Sin(2*math.Pi*float64(i)/float64(n))
	}
	Sort(out)

	return out
}

func BenchmarkDescribe(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		values := makeBenchValues(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := Describe(values); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkStdDev(b *testing.B) {
	sizes := []int{64, 1024, 16384, 65536}
	for _, n := range sizes {
		values := makeBenchValues(n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				if _, err := StdDev(values); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
