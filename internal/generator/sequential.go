package generator

import (
	"context"
	"fmt"
)

// SequentialGenerator encodes the next shared counter value in the
// configured alphabet, left-padded to the key length. Keys are
// deterministically unique across every process sharing the counter
// namespace, but sequential and therefore guessable.
type SequentialGenerator struct {
	counter  Counter
	alphabet Alphabet
	length   int
}

// NewSequentialGenerator creates a SequentialGenerator backed by counter.
func NewSequentialGenerator(counter Counter, alphabet Alphabet, length int) (*SequentialGenerator, error) {
	if counter == nil {
		return nil, fmt.Errorf("%w: sequential strategy requires a counter", ErrInvalidConfiguration)
	}
	if err := validateKeyLength(length); err != nil {
		return nil, err
	}
	if _, err := alphabet.MaxValue(length); err != nil {
		return nil, err
	}
	return &SequentialGenerator{
		counter:  counter,
		alphabet: alphabet,
		length:   length,
	}, nil
}

func (g *SequentialGenerator) Generate(ctx context.Context) (string, error) {
	n, err := g.counter.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}
	return g.alphabet.Encode(n, g.length)
}
