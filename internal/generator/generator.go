// Package generator issues short fixed-length alphanumeric keys. One of
// three interchangeable strategies is selected at process start: purely
// random keys, counter-backed sequential keys, or counter-backed keys
// scattered through a modular-exponentiation permutation of a prime field.
package generator

import (
	"context"
	"fmt"
)

// KeyGenerator produces one key per call. Implementations are safe for
// concurrent use; counter-backed strategies are additionally safe across
// processes sharing the same counter namespace.
type KeyGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// Counter is the shared atomic counter the sequential and permutation
// strategies delegate uniqueness to. Next returns a value strictly greater
// than every value previously returned for the same namespace. Values
// skipped by failed calls are never reused.
type Counter interface {
	Next(ctx context.Context) (uint64, error)
}

// Strategy selects the key generation algorithm.
type Strategy string

const (
	StrategyRandom      Strategy = "random"
	StrategySequential  Strategy = "sequential"
	StrategyPermutation Strategy = "permutation"
)

// Config holds the immutable generator parameters fixed at process start.
type Config struct {
	Strategy    Strategy
	Alphabet    Alphabet
	KeyLength   int
	Permutation PermutationParams
}

// New builds the configured strategy. counter may be nil for
// StrategyRandom and is required for the counter-backed strategies.
func New(cfg Config, counter Counter) (KeyGenerator, error) {
	switch cfg.Strategy {
	case StrategyRandom:
		return NewRandomGenerator(cfg.Alphabet, cfg.KeyLength)
	case StrategySequential:
		return NewSequentialGenerator(counter, cfg.Alphabet, cfg.KeyLength)
	case StrategyPermutation:
		return NewPermutationGenerator(counter, cfg.Alphabet, cfg.KeyLength, cfg.Permutation)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, cfg.Strategy)
	}
}

func validateKeyLength(length int) error {
	if length < 1 || length > 255 {
		return fmt.Errorf("%w: key length must be between 1 and 255, got %d", ErrInvalidConfiguration, length)
	}
	return nil
}
