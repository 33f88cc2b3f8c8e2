package graycode

import "math/bits"

// IsOdd reports whether the code represents an odd binary value. A Gray
// code is odd when the number of bits set in its representation is odd.
func IsOdd[U Uint](c Code[U]) bool {
	return bits.OnesCount64(uint64(c.value))&1 == 1
}

// IsEven reports whether the code represents an even binary value.
func IsEven[U Uint](c Code[U]) bool {
	return !IsOdd(c)
}

// parityFold is the portable reference for IsOdd: an XOR fold that
// collapses the set-bit parity of v into bit 0.
func parityFold[U Uint](v U) bool {
	for mask := Width[U]() / 2; mask != 0; mask >>= 1 {
		v ^= v >> mask
	}
	return v&1 == 1
}
