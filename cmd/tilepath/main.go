// Command tilepath finds a shortest 4-connected route across an ASCII tile
// map and prints it.
//
// Usage:
//
//	tilepath [-map FILE | -gen open|random|serpentine -width W -height H -density P -seed N]
//	         [-start X,Y] [-goal X,Y] [-heap]
//
// Without -map a map is generated; the default is a 7×5 open demo map.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/builder"
	"github.com/katalvlaran/tilepath/dfs"
	"github.com/katalvlaran/tilepath/searchgraph"
	"github.com/katalvlaran/tilepath/tilemap"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tilepath: ")

	mapFile := flag.String("map", "", "path to an ASCII map file; overrides -gen")
	gen := flag.String("gen", "open", "map generator: open, random or serpentine")
	width := flag.Int("width", 7, "generated map width")
	height := flag.Int("height", 5, "generated map height")
	density := flag.Float64("density", 0.3, "wall probability for -gen random")
	seed := flag.Int64("seed", 1, "random seed for -gen random")
	startFlag := flag.String("start", "0,0", "start cell as x,y")
	goalFlag := flag.String("goal", "4,4", "goal cell as x,y")
	useHeap := flag.Bool("heap", false, "use the binary-heap open set")
	flag.Parse()

	start, err := tilemap.ParseCell(*startFlag)
	if err != nil {
		log.Fatalf("-start: %v", err)
	}
	goal, err := tilemap.ParseCell(*goalFlag)
	if err != nil {
		log.Fatalf("-goal: %v", err)
	}

	var m *tilemap.Grid
	if *mapFile != "" {
		m, err = loadMap(*mapFile)
	} else {
		m, err = generate(*gen, *width, *height, *density, *seed, start, goal)
	}
	if err != nil {
		log.Fatal(err)
	}

	kind := astar.OpenSetLinear
	if *useHeap {
		kind = astar.OpenSetHeap
	}
	reached, err := solve(os.Stdout, m, start, goal, kind)
	if errors.Is(err, astar.ErrNodeNotFound) {
		log.Fatalf("%v (cells must be on the map and walkable)", err)
	}
	if err != nil {
		log.Fatal(err)
	}
	if !reached {
		os.Exit(1)
	}
}

// solve draws m with start and goal marked, searches, and reports the step
// count and the marked route to out. reached is false when no path exists.
func solve(out io.Writer, m *tilemap.Grid, start, goal tilemap.Cell, kind astar.OpenSetKind) (reached bool, err error) {
	g, err := searchgraph.Build(m)
	if err != nil {
		return false, err
	}
	res, err := astar.Search(g, start, goal, astar.WithOpenSet(kind))
	if err != nil {
		return false, err
	}

	fmt.Fprint(out, tilemap.Render(m, []tilemap.Cell{start, goal}))
	fmt.Fprintln(out)
	switch res.Status {
	case astar.StatusAtGoal:
		fmt.Fprintln(out, "Start and goal are the same cell.")
	case astar.StatusNoPath:
		fmt.Fprintln(out, "No path found.")
		if r, err := dfs.Regions(g); err == nil {
			fmt.Fprintf(out, "Start is in region %d of %d, goal in region %d.\n", r.Label(start), r.Count(), r.Label(goal))
		}
		return false, nil
	}
	fmt.Fprintln(out, "Step count:", len(res.Path))
	fmt.Fprint(out, tilemap.Render(m, res.Path))

	return true, nil
}

func loadMap(path string) (*tilemap.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tilemap.Parse(f)
}

// generate builds a map with the named generator. Random maps keep start
// and goal walkable.
func generate(name string, w, h int, density float64, seed int64, start, goal tilemap.Cell) (*tilemap.Grid, error) {
	switch name {
	case "open":
		return builder.Open(w, h)
	case "random":
		return builder.Random(w, h, density, builder.WithSeed(seed), builder.WithClear(start, goal))
	case "serpentine":
		return builder.Serpentine(w, h, builder.WithClear(start, goal))
	}

	return nil, fmt.Errorf("unknown generator %q", name)
}
