package linkage_test

import (
	"math"
	"testing"

	"github.com/kintree/kintree/linkage"
	"github.com/kintree/kintree/matrix"
)

// syntheticMatrix builds an n-entity matrix with deterministic pseudo-random
// distances (no RNG, reproducible across runs).
func syntheticMatrix(b *testing.B, n int) *matrix.Distance {
	b.Helper()
	labels := make([]string, n)
	cells := make([][]float64, n)
	for i := 0; i < n; i++ {
		labels[i] = "K" + string(rune('A'+i%26)) + string(rune('0'+i/26%10)) + string(rune('0'+i/260))
		cells[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := 1 + math.Abs(math.Sin(float64(i*31+j*17)))
			cells[i][j] = v
			cells[j][i] = v
		}
	}
	d, err := matrix.New(labels, cells)
	if err != nil {
		b.Fatalf("matrix.New failed: %v", err)
	}
	return d
}

// benchmarkRun clusters an n-entity synthetic matrix under method.
func benchmarkRun(b *testing.B, n int, method linkage.Method) {
	d := syntheticMatrix(b, n)

	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		if _, err := linkage.Run(d, method); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Ward100 benchmarks the default criterion on 100 entities.
func BenchmarkRun_Ward100(b *testing.B) {
	benchmarkRun(b, 100, linkage.Ward)
}

// BenchmarkRun_Average100 benchmarks UPGMA on 100 entities.
func BenchmarkRun_Average100(b *testing.B) {
	benchmarkRun(b, 100, linkage.Average)
}

// BenchmarkRun_Complete250 benchmarks furthest-neighbour on 250 entities.
func BenchmarkRun_Complete250(b *testing.B) {
	benchmarkRun(b, 250, linkage.Complete)
}
