package number_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/numring/number"
)

func BenchmarkInt64GCD(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	xs := make([]int64, 1024)
	ys := make([]int64, 1024)
	for i := range xs {
		xs[i] = rng.Int63()
		ys[i] = rng.Int63()
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = number.I64.GCD(xs[i%len(xs)], ys[i%len(ys)])
	}
}

func BenchmarkBigIntGCD(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	xs := make([]*big.Int, 256)
	ys := make([]*big.Int, 256)
	for i := range xs {
		xs[i] = new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 512))
		ys[i] = new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), 512))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = number.Big.GCD(xs[i%len(xs)], ys[i%len(ys)])
	}
}

func BenchmarkFloat64GCD(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 1024)
	ys := make([]float64, 1024)
	for i := range xs {
		xs[i] = float64(rng.Int63n(1 << 40))
		ys[i] = float64(rng.Int63n(1 << 40))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = number.F64.GCD(xs[i%len(xs)], ys[i%len(ys)])
	}
}
