package adjacency_test

import (
	"math/rand"
	"testing"

	"github.com/woodywonge/momepy/adjacency"
)

// BenchmarkComponents measures the closure primitive on a sparse random
// graph of 100k units with average degree 4.
// Complexity: O(N + E)
func BenchmarkComponents(b *testing.B) {
	const n = 100_000
	rng := rand.New(rand.NewSource(42))
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		deg := rng.Intn(5)
		for d := 0; d < deg; d++ {
			rows[i] = append(rows[i], rng.Intn(n))
		}
	}
	g, err := adjacency.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Components()
	}
}

// BenchmarkNeighborhood measures closed 1-hop expansion on a ring graph.
func BenchmarkNeighborhood(b *testing.B) {
	const n = 100_000
	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		rows[i] = []int{(i + n - 1) % n, (i + 1) % n}
	}
	g, err := adjacency.FromRows(rows)
	if err != nil {
		b.Fatalf("setup FromRows failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Neighborhood(i%n, true); err != nil {
			b.Fatal(err)
		}
	}
}
