package projection_test

import (
	"testing"

	"github.com/katalvlaran/numerics/projection"
)

// BenchmarkCoefficients_Hit measures the memoized path.
func BenchmarkCoefficients_Hit(b *testing.B) {
	c := projection.New()
	if _, err := c.Coefficients(40, 200, 77); err != nil {
		b.Fatalf("Coefficients failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Coefficients(40, 200, 77); err != nil {
			b.Fatalf("Coefficients failed: %v", err)
		}
	}
}

// BenchmarkCoefficients_MissLogSpace measures a fresh computation that
// overflows the direct path.
func BenchmarkCoefficients_MissLogSpace(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := projection.New()
		if _, err := c.Coefficients(50, 2000, 1000); err != nil {
			b.Fatalf("Coefficients failed: %v", err)
		}
	}
}

// BenchmarkCoefficients_Parallel measures hits under contention.
func BenchmarkCoefficients_Parallel(b *testing.B) {
	c := projection.New()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := c.Coefficients(20, 100, 50); err != nil {
				b.Error(err)
				return
			}
		}
	})
}
