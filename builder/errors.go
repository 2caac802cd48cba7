package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrTooSmall indicates a width or height below MinDim.
	ErrTooSmall = errors.New("builder: dimension too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was called
	// without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")
)

// Constructor names used as error context.
const (
	MethodOpen       = "Open"
	MethodRandom     = "Random"
	MethodSerpentine = "Serpentine"
)

// builderErrorf wraps sentinel with the constructor name and a detail message.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", sentinel, method, fmt.Sprintf(format, args...))
}

func validateDims(method string, w, h int) error {
	if w < MinDim || h < MinDim {
		return builderErrorf(method, ErrTooSmall, "need at least %d×%d, got %d×%d", MinDim, MinDim, w, h)
	}

	return nil
}

func validateProbability(method string, p float64) error {
	if p < 0 || p > 1 {
		return builderErrorf(method, ErrInvalidProbability, "got %g", p)
	}

	return nil
}
