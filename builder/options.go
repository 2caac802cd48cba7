package builder

import (
	"math/rand"

	"github.com/katalvlaran/tilepath/tilemap"
)

// MinDim is the smallest accepted width or height.
const MinDim = 1

// Option configures a constructor.
type Option func(*config)

type config struct {
	rng   *rand.Rand
	clear []tilemap.Cell
}

func newConfig(opts ...Option) config {
	var cfg config
	for _, fn := range opts {
		fn(&cfg)
	}

	return cfg
}

// WithSeed seeds a private random source.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand uses rng directly, so several maps can share one sequence.
// A nil rng is ignored.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// WithClear keeps cells walkable regardless of what the constructor draws.
// Cells off the map are ignored.
func WithClear(cells ...tilemap.Cell) Option {
	return func(c *config) {
		c.clear = append(c.clear, cells...)
	}
}

// applyClear unblocks every WithClear cell that lies on m.
func (c config) applyClear(m *tilemap.Grid) {
	for _, cell := range c.clear {
		_ = m.SetBlocked(cell.X, cell.Y, false)
	}
}
