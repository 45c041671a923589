package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationGeneratorFullPeriod(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	// p=23, g=5 is a verified primitive-root pair: the 22 keys produced
	// for counter values 1..22 must decode to exactly {1, ..., 22}.
	g, err := NewPermutationGenerator(&atomicCounter{}, alphabet, 2, PermutationParams{
		Prime:         23,
		PrimitiveRoot: 5,
		Verify:        true,
	})
	require.NoError(t, err)

	seen := make(map[uint64]struct{})
	for n := 1; n <= 22; n++ {
		key, err := g.Generate(context.Background())
		require.NoError(t, err)
		require.Len(t, key, 2)

		v, err := alphabet.Decode(key)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, uint64(1))
		assert.LessOrEqual(t, v, uint64(22))

		_, dup := seen[v]
		assert.False(t, dup, "residue %d issued twice (counter value %d)", v, n)
		seen[v] = struct{}{}
	}
	assert.Len(t, seen, 22, "full period must cover every nonzero residue")

	// Counter value 23 == p would wrap the permutation and reissue the
	// key of counter value 1; the generator fails hard instead.
	_, err = g.Generate(context.Background())
	assert.ErrorIs(t, err, ErrKeySpaceExhausted)
}

func TestPermutationGeneratorKnownValue(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	// 2^1 mod 37845836980717 = 2, base62-encoded and left-padded.
	g, err := NewPermutationGenerator(&atomicCounter{}, alphabet, 8, PermutationParams{
		Prime:         37845836980717,
		PrimitiveRoot: 2,
	})
	require.NoError(t, err)

	key, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "00000002", key)
}

func TestPermutationGeneratorCounterStart(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	// With start s the first counter value 1 maps to exponent s+1.
	g, err := NewPermutationGenerator(&atomicCounter{}, alphabet, 2, PermutationParams{
		Prime:         23,
		PrimitiveRoot: 5,
		CounterStart:  10,
	})
	require.NoError(t, err)

	key, err := g.Generate(context.Background())
	require.NoError(t, err)
	v, err := alphabet.Decode(key)
	require.NoError(t, err)
	assert.Equal(t, expMod(5, 11, 23), v)
}

func TestPermutationGeneratorErrors(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	t.Run("Counter Unavailable", func(t *testing.T) {
		ctr := &fakeCounter{next: func(context.Context) (uint64, error) {
			return 0, errors.New("i/o timeout")
		}}
		g, err := NewPermutationGenerator(ctr, alphabet, 8, PermutationParams{Prime: 23, PrimitiveRoot: 5})
		require.NoError(t, err)

		_, err = g.Generate(context.Background())
		assert.ErrorIs(t, err, ErrCounterUnavailable)
	})

	t.Run("Exponent Beyond Period", func(t *testing.T) {
		g, err := NewPermutationGenerator(fixedCounter(23), alphabet, 8, PermutationParams{Prime: 23, PrimitiveRoot: 5})
		require.NoError(t, err)

		_, err = g.Generate(context.Background())
		assert.ErrorIs(t, err, ErrKeySpaceExhausted)
	})

	t.Run("Exponent Zero", func(t *testing.T) {
		// Reachable only through an out-of-band counter reset; exponent 0
		// is outside the valid domain [1, p-1].
		g, err := NewPermutationGenerator(fixedCounter(0), alphabet, 8, PermutationParams{Prime: 23, PrimitiveRoot: 5})
		require.NoError(t, err)

		_, err = g.Generate(context.Background())
		assert.ErrorIs(t, err, ErrKeySpaceExhausted)
	})
}

func TestNewPermutationGeneratorValidation(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)
	ctr := &atomicCounter{}

	t.Run("Nil Counter", func(t *testing.T) {
		_, err := NewPermutationGenerator(nil, alphabet, 8, PermutationParams{Prime: 23, PrimitiveRoot: 5})
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})

	cases := []struct {
		name   string
		length int
		params PermutationParams
	}{
		{"Prime Too Small", 8, PermutationParams{Prime: 2, PrimitiveRoot: 1}},
		{"Root Out Of Range", 8, PermutationParams{Prime: 23, PrimitiveRoot: 23}},
		{"Root Too Small", 8, PermutationParams{Prime: 23, PrimitiveRoot: 1}},
		{"Prime Exceeds Key Space", 2, PermutationParams{Prime: 1000003, PrimitiveRoot: 2}},
		{"Verify Rejects Composite", 8, PermutationParams{Prime: 1000001, PrimitiveRoot: 2, Verify: true}},
		{"Verify Rejects Non Primitive Root", 8, PermutationParams{Prime: 23, PrimitiveRoot: 2, Verify: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewPermutationGenerator(ctr, alphabet, c.length, c.params)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
		})
	}
}

func TestPermutationGeneratorConcurrent(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	// 2's multiplicative order mod 1000003 far exceeds the 4000 counter
	// values consumed here, so all keys must be distinct.
	g, err := NewPermutationGenerator(&atomicCounter{}, alphabet, 8, PermutationParams{
		Prime:         1000003,
		PrimitiveRoot: 2,
	})
	require.NoError(t, err)
	assertConcurrentlyDistinct(t, g, 8, 500)
}

func BenchmarkPermutationGenerate(b *testing.B) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	if err != nil {
		b.Fatal(err)
	}
	g, err := NewPermutationGenerator(&atomicCounter{}, alphabet, 8, PermutationParams{
		Prime:         37845836980717,
		PrimitiveRoot: 2,
	})
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Generate(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
