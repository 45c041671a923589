package generator

import (
	"context"
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RandomGenerator draws every key character independently and uniformly
// from the alphabet. Uniqueness is probabilistic only (birthday bound over
// the B^L key space); it needs no coordination and holds no state.
type RandomGenerator struct {
	alphabet Alphabet
	length   int
}

// NewRandomGenerator creates a RandomGenerator producing keys of exactly
// length characters.
func NewRandomGenerator(alphabet Alphabet, length int) (*RandomGenerator, error) {
	if err := validateKeyLength(length); err != nil {
		return nil, err
	}
	return &RandomGenerator{
		alphabet: alphabet,
		length:   length,
	}, nil
}

func (g *RandomGenerator) Generate(ctx context.Context) (string, error) {
	key, err := gonanoid.Generate(g.alphabet.Chars(), g.length)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return key, nil
}
