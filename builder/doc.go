// Package builder generates tile maps for demos, tests and benchmarks.
//
// Constructors return a fresh *tilemap.Grid:
//
//   - Open(w, h):             every cell walkable.
//   - Random(w, h, p, ...):   each cell blocked with probability p.
//   - Serpentine(w, h):       full-width walls on odd rows, each with one gap,
//     alternating right and left, forcing the longest possible detour.
//
// Stochastic constructors need a random source supplied through WithSeed or
// WithRand; without one they fail with ErrNeedRandSource rather than fall
// back to a global generator, so fixtures stay reproducible.
//
// Errors:
//
//   - ErrTooSmall             width or height below MinDim.
//   - ErrInvalidProbability   p outside [0,1].
//   - ErrNeedRandSource       stochastic constructor without an RNG.
//
// Every error wraps its sentinel and names the constructor, e.g.
// "builder: probability out of range: Random: got 1.5".
package builder
