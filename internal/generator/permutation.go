package generator

import (
	"context"
	"fmt"
)

// PermutationParams configures the prime-field permutation.
//
// Prime and PrimitiveRoot are a caller-supplied precondition: because g is
// a primitive root of the prime p, the sequence g^1, g^2, …, g^(p-1) mod p
// visits every residue in {1, …, p-1} exactly once before repeating. An
// incorrect pair is not detected per call — it silently yields a
// shorter-period, colliding sequence. Set Verify (or call
// VerifyPermutationParams from setup tooling) to check both at startup.
type PermutationParams struct {
	// Prime is the modulus p. Must satisfy p < B^L so every residue fits
	// in the key length.
	Prime uint64
	// PrimitiveRoot is the generator g of the multiplicative group mod p.
	PrimitiveRoot uint64
	// CounterStart is added to every counter value before exponentiation,
	// letting a fresh counter resume an already-consumed exponent range.
	CounterStart uint64
	// Verify runs the primality and primitive-root checks at construction.
	Verify bool
}

// PermutationGenerator maps shared counter values through the permutation
// n -> g^n mod p. Keys are deterministically unique for counter values
// within [1, p-1] yet look pseudo-randomly distributed, and no state is
// needed beyond the counter and the fixed (p, g) pair.
type PermutationGenerator struct {
	counter  Counter
	alphabet Alphabet
	length   int
	prime    uint64
	root     uint64
	start    uint64
}

// NewPermutationGenerator creates a PermutationGenerator backed by counter.
func NewPermutationGenerator(counter Counter, alphabet Alphabet, length int, params PermutationParams) (*PermutationGenerator, error) {
	if counter == nil {
		return nil, fmt.Errorf("%w: permutation strategy requires a counter", ErrInvalidConfiguration)
	}
	if err := validateKeyLength(length); err != nil {
		return nil, err
	}
	if params.Prime < 3 {
		return nil, fmt.Errorf("%w: prime must be at least 3, got %d", ErrInvalidConfiguration, params.Prime)
	}
	if params.Prime >= 1<<63 {
		return nil, fmt.Errorf("%w: prime %d exceeds 63 bits", ErrInvalidConfiguration, params.Prime)
	}
	if params.PrimitiveRoot < 2 || params.PrimitiveRoot >= params.Prime {
		return nil, fmt.Errorf("%w: primitive root must be in [2, prime), got %d", ErrInvalidConfiguration, params.PrimitiveRoot)
	}
	max, err := alphabet.MaxValue(length)
	if err != nil {
		return nil, err
	}
	if params.Prime-1 > max {
		return nil, fmt.Errorf("%w: prime %d exceeds the %d-character key space", ErrInvalidConfiguration, params.Prime, length)
	}
	if params.Verify {
		if err := VerifyPermutationParams(params.Prime, params.PrimitiveRoot); err != nil {
			return nil, err
		}
	}
	return &PermutationGenerator{
		counter:  counter,
		alphabet: alphabet,
		length:   length,
		prime:    params.Prime,
		root:     params.PrimitiveRoot,
		start:    params.CounterStart,
	}, nil
}

func (g *PermutationGenerator) Generate(ctx context.Context) (string, error) {
	n, err := g.counter.Next(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCounterUnavailable, err)
	}

	// Valid exponents are [1, p-1]. Exponent 0 would fix the key at the
	// encoding of 1, and anything >= p would wrap the permutation and
	// reissue earlier keys, so both fail hard instead.
	e := g.start + n
	if e < n || e == 0 || e >= g.prime {
		return "", fmt.Errorf("%w: counter value %d is outside the permutation period [1, %d]", ErrKeySpaceExhausted, n, g.prime-1)
	}

	v := expMod(g.root, e, g.prime)
	return g.alphabet.Encode(v, g.length)
}
