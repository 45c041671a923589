package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulMod(t *testing.T) {
	assert.Equal(t, uint64(6), mulMod(2, 3, 23))
	assert.Equal(t, uint64(1), mulMod(5, 14, 23)) // 70 mod 23

	// Products far beyond 64 bits must still reduce correctly.
	const p = uint64(37845836980717)
	assert.Equal(t, uint64(1), mulMod(p-1, p-1, p)) // (-1)^2 = 1 (mod p)
	assert.Equal(t, p-2, mulMod(p-1, 2, p))         // -2 = p-2 (mod p)
}

func TestExpMod(t *testing.T) {
	assert.Equal(t, uint64(1), expMod(5, 0, 23))
	assert.Equal(t, uint64(5), expMod(5, 1, 23))
	assert.Equal(t, uint64(2), expMod(5, 2, 23))
	assert.Equal(t, uint64(1), expMod(5, 22, 23)) // Fermat
	assert.Equal(t, uint64(0), expMod(5, 10, 1))

	// Exponent reduction around the period: g^p = g^1 (mod p) since
	// g^(p-1) = 1 for prime p.
	assert.Equal(t, expMod(5, 23, 23), expMod(5, 1, 23))

	const p = uint64(37845836980717)
	assert.Equal(t, uint64(2), expMod(2, 1, p))
	assert.Equal(t, uint64(1), expMod(2, 0, p))
}

func TestIsPrime(t *testing.T) {
	primes := []uint64{2, 3, 5, 23, 1000003, 37845836980717}
	for _, p := range primes {
		assert.True(t, isPrime(p), "%d should be prime", p)
	}
	composites := []uint64{0, 1, 4, 22, 1000001, 1<<62 - 2}
	for _, n := range composites {
		assert.False(t, isPrime(n), "%d should be composite", n)
	}
}

func TestIsPrimitiveRoot(t *testing.T) {
	// 5 generates the full group mod 23; 2 has order 11.
	assert.True(t, isPrimitiveRoot(5, 23))
	assert.False(t, isPrimitiveRoot(2, 23))
	assert.False(t, isPrimitiveRoot(23, 23))
	assert.True(t, isPrimitiveRoot(2, 11))
}

func TestVerifyPermutationParams(t *testing.T) {
	assert.NoError(t, VerifyPermutationParams(23, 5))
	assert.ErrorIs(t, VerifyPermutationParams(22, 5), ErrInvalidConfiguration)
	assert.ErrorIs(t, VerifyPermutationParams(23, 2), ErrInvalidConfiguration)
}
