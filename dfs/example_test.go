package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ExampleRegions tells a walled-off goal apart from a slow search.
func ExampleRegions() {
	m, _ := tilemap.ParseString("--X-\n--X-\n")
	g, _ := searchgraph.Build(m)
	r, _ := dfs.Regions(g)

	region, size := r.Largest()
	fmt.Println("regions:", r.Count(), "largest:", region, "cells:", size)
	fmt.Println("connected:", r.Connected(tilemap.Cell{X: 0, Y: 0}, tilemap.Cell{X: 3, Y: 1}))
	// Output:
	// regions: 2 largest: 0 cells: 4
	// connected: false
}
