package generator

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	require.NoError(t, err)

	t.Run("Key Shape", func(t *testing.T) {
		g, err := NewRandomGenerator(alphabet, 8)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			key, err := g.Generate(context.Background())
			require.NoError(t, err)
			require.Len(t, key, 8)
			for _, c := range key {
				assert.True(t, strings.ContainsRune(DefaultAlphabet, c), "character %q not in alphabet", c)
			}
		}
	})

	t.Run("Per Position Distribution", func(t *testing.T) {
		g, err := NewRandomGenerator(alphabet, 8)
		require.NoError(t, err)

		const samples = 5000
		counts := make([]map[byte]int, 8)
		for i := range counts {
			counts[i] = make(map[byte]int)
		}
		for i := 0; i < samples; i++ {
			key, err := g.Generate(context.Background())
			require.NoError(t, err)
			for pos := 0; pos < len(key); pos++ {
				counts[pos][key[pos]]++
			}
		}

		// Expected count per character per position is samples/62 ≈ 81.
		// Loose statistical bounds; a skewed source fails decisively.
		for pos, byChar := range counts {
			assert.Len(t, byChar, 62, "position %d should see the whole alphabet", pos)
			for c, n := range byChar {
				assert.Greater(t, n, 20, "character %q at position %d", c, pos)
				assert.Less(t, n, 250, "character %q at position %d", c, pos)
			}
		}
	})

	t.Run("Invalid Length", func(t *testing.T) {
		_, err := NewRandomGenerator(alphabet, 0)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
	})
}

func BenchmarkRandomGenerate(b *testing.B) {
	alphabet, err := NewAlphabet(DefaultAlphabet)
	if err != nil {
		b.Fatal(err)
	}
	g, err := NewRandomGenerator(alphabet, 8)
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
