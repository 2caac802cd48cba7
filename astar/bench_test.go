package astar_test

import (
	"testing"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/builder"
	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// serpentine builds an n×n map that forces long detours.
func serpentine(b *testing.B, n int) *searchgraph.Graph {
	b.Helper()
	m, err := builder.Serpentine(n, n)
	if err != nil {
		b.Fatal(err)
	}
	g, err := searchgraph.Build(m)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func benchmarkSearch(b *testing.B, kind astar.OpenSetKind, n int) {
	g := serpentine(b, n)
	pf, err := astar.New(g, astar.WithOpenSet(kind))
	if err != nil {
		b.Fatal(err)
	}
	goal := tilemap.Cell{X: 0, Y: n - 1}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pf.Search(tilemap.Cell{}, goal)
	}
}

// BenchmarkSearch_Linear measures the default O(V²) open list.
func BenchmarkSearch_Linear(b *testing.B) { benchmarkSearch(b, astar.OpenSetLinear, 61) }

// BenchmarkSearch_Heap measures the binary-heap open set on the same map.
func BenchmarkSearch_Heap(b *testing.B) { benchmarkSearch(b, astar.OpenSetHeap, 61) }
