package generator

import (
	"fmt"
	"math/bits"
)

// mulMod returns a*b mod m without overflowing, using a 128-bit
// intermediate product. Safe for any m >= 1: with both operands reduced
// below m the product is below m*2^64, so the high word stays below m as
// bits.Div64 requires.
func mulMod(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// expMod returns base^exp mod m by binary exponentiation, reducing after
// every squaring. O(log exp) multiplications.
func expMod(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	base %= m
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		exp >>= 1
	}
	return result
}

// millerRabinBases is a witness set proven deterministic for all n < 2^64.
var millerRabinBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// isPrime reports whether n is prime, deterministically for 64-bit inputs.
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range millerRabinBases {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}

	d := n - 1
	r := 0
	for d&1 == 0 {
		d >>= 1
		r++
	}

	for _, a := range millerRabinBases {
		x := expMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for i := 0; i < r-1; i++ {
			x = mulMod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// primeFactors returns the distinct prime factors of n by trial division.
// Cost grows with the square root of the largest factor; intended for
// startup verification and tests, not for any per-call path.
func primeFactors(n uint64) []uint64 {
	var factors []uint64
	for _, p := range []uint64{2, 3} {
		if n%p == 0 {
			factors = append(factors, p)
			for n%p == 0 {
				n /= p
			}
		}
	}
	for f := uint64(5); f <= n/f; f += 2 {
		if n%f == 0 {
			factors = append(factors, f)
			for n%f == 0 {
				n /= f
			}
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// isPrimitiveRoot reports whether g generates the full multiplicative group
// modulo the prime p, i.e. g^((p-1)/q) != 1 (mod p) for every distinct
// prime factor q of p-1.
func isPrimitiveRoot(g, p uint64) bool {
	if g%p == 0 {
		return false
	}
	for _, q := range primeFactors(p - 1) {
		if expMod(g, (p-1)/q, p) == 1 {
			return false
		}
	}
	return true
}

// VerifyPermutationParams checks that prime is actually prime and that
// primitiveRoot is a primitive root modulo prime. A wrong pair is not a
// per-call failure: it silently produces a shorter-period, colliding key
// sequence, so operators should run this check when changing parameters.
// The primitive-root check factors prime-1 by trial division and can be
// slow for primes with large prime factors of prime-1.
func VerifyPermutationParams(prime, primitiveRoot uint64) error {
	if !isPrime(prime) {
		return fmt.Errorf("%w: %d is not prime", ErrInvalidConfiguration, prime)
	}
	if !isPrimitiveRoot(primitiveRoot, prime) {
		return fmt.Errorf("%w: %d is not a primitive root modulo %d", ErrInvalidConfiguration, primitiveRoot, prime)
	}
	return nil
}
