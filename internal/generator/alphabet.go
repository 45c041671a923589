package generator

import (
	"fmt"
	"math"
)

// DefaultAlphabet is the base62 character set, ordered so that numeric
// order of encoded values matches byte-wise lexicographic order of keys.
const DefaultAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// Alphabet is a fixed character set used to encode integers as fixed-length
// keys by base-B digit expansion, B being the alphabet size.
type Alphabet struct {
	chars string
	index [256]int16
}

// NewAlphabet builds an Alphabet from chars.
// chars must contain between 2 and 255 distinct single-byte characters.
func NewAlphabet(chars string) (Alphabet, error) {
	if len(chars) < 2 || len(chars) > 255 {
		return Alphabet{}, fmt.Errorf("%w: alphabet must have between 2 and 255 characters, got %d", ErrInvalidConfiguration, len(chars))
	}
	var a Alphabet
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < len(chars); i++ {
		c := chars[i]
		if c >= 0x80 {
			return Alphabet{}, fmt.Errorf("%w: alphabet must be ASCII, found byte 0x%02x", ErrInvalidConfiguration, c)
		}
		if a.index[c] >= 0 {
			return Alphabet{}, fmt.Errorf("%w: duplicate character %q in alphabet", ErrInvalidConfiguration, c)
		}
		a.index[c] = int16(i)
	}
	a.chars = chars
	return a, nil
}

// Size returns the alphabet size B.
func (a Alphabet) Size() int {
	return len(a.chars)
}

// Chars returns the character set in digit order.
func (a Alphabet) Chars() string {
	return a.chars
}

// Encode expands n into exactly length base-B digits, left-padded with the
// zero symbol. It fails with ErrKeySpaceExhausted when n >= B^length.
func (a Alphabet) Encode(n uint64, length int) (string, error) {
	base := uint64(len(a.chars))
	buf := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		buf[i] = a.chars[n%base]
		n /= base
	}
	if n > 0 {
		return "", fmt.Errorf("%w: value does not fit in %d base-%d digits", ErrKeySpaceExhausted, length, base)
	}
	return string(buf), nil
}

// Decode is the exact inverse of Encode: it recovers the integer a key was
// produced from. Keys containing out-of-alphabet characters are rejected.
func (a Alphabet) Decode(key string) (uint64, error) {
	base := uint64(len(a.chars))
	var n uint64
	for i := 0; i < len(key); i++ {
		idx := a.index[key[i]]
		if idx < 0 {
			return 0, fmt.Errorf("character %q at position %d is not in the alphabet", key[i], i)
		}
		if n > (math.MaxUint64-uint64(idx))/base {
			return 0, fmt.Errorf("key %q overflows uint64", key)
		}
		n = n*base + uint64(idx)
	}
	return n, nil
}

// MaxValue returns B^length - 1, the largest integer encodable in length
// digits. It fails when the key space does not fit in a uint64.
func (a Alphabet) MaxValue(length int) (uint64, error) {
	base := uint64(len(a.chars))
	var max uint64
	for i := 0; i < length; i++ {
		if max > (math.MaxUint64-(base-1))/base {
			return 0, fmt.Errorf("%w: %d-character base-%d key space exceeds uint64", ErrInvalidConfiguration, length, base)
		}
		max = max*base + (base - 1)
	}
	return max, nil
}
