package builder

import "github.com/katalvlaran/tilepath/tilemap"

// Open returns a w×h map with every cell walkable.
func Open(w, h int) (*tilemap.Grid, error) {
	if err := validateDims(MethodOpen, w, h); err != nil {
		return nil, err
	}

	return tilemap.NewOpenGrid(w, h)
}

// Random returns a w×h map where each cell is blocked with probability p,
// drawn in row-major order from the configured random source.
func Random(w, h int, p float64, opts ...Option) (*tilemap.Grid, error) {
	if err := validateDims(MethodRandom, w, h); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodRandom, p); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandom, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	values := make([][]int, h)
	for y := range values {
		values[y] = make([]int, w)
		for x := range values[y] {
			if cfg.rng.Float64() < p {
				values[y][x] = 1
			}
		}
	}
	m, err := tilemap.NewGrid(values)
	if err != nil {
		return nil, err
	}
	cfg.applyClear(m)

	return m, nil
}

// Serpentine returns a w×h map whose odd rows are walls with a single gap,
// at the right edge on rows 1, 5, 9... and at the left edge on rows 3, 7...
// The route from (0,0) to the bottom row visits every even row end to end.
func Serpentine(w, h int, opts ...Option) (*tilemap.Grid, error) {
	if err := validateDims(MethodSerpentine, w, h); err != nil {
		return nil, err
	}
	m, err := tilemap.NewOpenGrid(w, h)
	if err != nil {
		return nil, err
	}
	for y := 1; y < h; y += 2 {
		gap := w - 1
		if (y/2)%2 == 1 {
			gap = 0
		}
		for x := 0; x < w; x++ {
			if x != gap {
				_ = m.SetBlocked(x, y, true)
			}
		}
	}
	newConfig(opts...).applyClear(m)

	return m, nil
}
