package hull_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/JAPNIT/topology-and-meta-learning/dataset"
	"github.com/JAPNIT/topology-and-meta-learning/hull"
)

// ringDataset builds n single-label points in convex position; every point
// becomes a loop vertex, so the walk length is maximal for the input size.
func ringDataset(b *testing.B, n int) *dataset.Dataset[string] {
	b.Helper()
	coords := make([][]float64, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = []float64{math.Cos(theta), math.Sin(theta)}
		labels[i] = "ring"
	}
	ds, err := dataset.New(coords, labels)
	if err != nil {
		b.Fatalf("ring fixture: %v", err)
	}
	return ds
}

// BenchmarkPeel_Ring measures a full peel over convex rings of growing size.
func BenchmarkPeel_Ring(b *testing.B) {
	for _, n := range []int{64, 256, 512} {
		b.Run(fmt.Sprintf("N%d", n), func(b *testing.B) {
			ds := ringDataset(b, n)

			b.ReportAllocs()
			b.SetBytes(int64(n))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				_, _ = hull.Peel(ds)
			}
		})
	}
}

// BenchmarkPeel_TwoBlobs measures peeling with an active homogeneity
// constraint: two labels force Verify work on every accepted advance.
func BenchmarkPeel_TwoBlobs(b *testing.B) {
	const half = 128
	coords := make([][]float64, 0, 2*half)
	labels := make([]string, 0, 2*half)
	for i := 0; i < half; i++ {
		theta := 2 * math.Pi * float64(i) / half
		coords = append(coords, []float64{math.Cos(theta), math.Sin(theta)})
		labels = append(labels, "a")
		coords = append(coords, []float64{10 + math.Cos(theta), math.Sin(theta)})
		labels = append(labels, "b")
	}
	ds, err := dataset.New(coords, labels)
	if err != nil {
		b.Fatalf("blob fixture: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(2 * half))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = hull.Peel(ds)
	}
}
