package graycode

import (
	"fmt"
	"math/bits"
)

// Uint is the set of fixed-width unsigned integer types a Code can wrap.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Code is an unsigned integer held in reflected binary Gray code form:
// stepping to the next or previous value flips exactly one bit of the
// representation. The zero value is the Gray code of zero.
//
//	gr := graycode.New[uint16](24)
//	u := gr.Uint() // u == 24 (0b11000)
//	g := gr.Bits() // g == 20 (0b10100)
//
// Gray code bit patterns do not preserve binary numeric order, so Code
// exposes no ordering; only equality is defined.
type Code[U Uint] struct {
	value U
}

// Width returns the number of bits in the representation of U.
func Width[U Uint]() uint {
	return uint(bits.Len64(uint64(^U(0))))
}

// Encode converts a binary value to its Gray code bit pattern.
func Encode[U Uint](v U) U {
	return v ^ (v >> 1)
}

// Decode converts a Gray code bit pattern back to the binary value it
// represents. It is the exact inverse of Encode over the full W-bit domain.
func Decode[U Uint](g U) U {
	for mask := Width[U]() / 2; mask != 0; mask >>= 1 {
		g ^= g >> mask
	}
	return g
}

// New returns the Gray code of the binary value v.
func New[U Uint](v U) Code[U] {
	return Code[U]{value: Encode(v)}
}

// FromBits returns a Code whose representation is pattern, verbatim.
// No encoding is applied.
func FromBits[U Uint](pattern U) Code[U] {
	return Code[U]{value: pattern}
}

// FromBool returns the Gray code of 0 or 1. Binary and Gray code share
// the same representation for these two values.
func FromBool[U Uint](b bool) Code[U] {
	return Code[U]{value: bit[U](b)}
}

// Set replaces the representation with the Gray code of the binary value v.
func (c *Code[U]) Set(v U) {
	c.value = Encode(v)
}

// SetBool replaces the representation with 0 or 1.
func (c *Code[U]) SetBool(b bool) {
	c.value = bit[U](b)
}

// Uint returns the binary value the code represents.
func (c Code[U]) Uint() U {
	return Decode(c.value)
}

// Bits returns the raw Gray code bit pattern.
func (c Code[U]) Bits() U {
	return c.value
}

// Bool reports whether the representation is nonzero.
func (c Code[U]) Bool() bool {
	return c.value != 0
}

// Equal reports whether c and o hold the same representation.
func (c Code[U]) Equal(o Code[U]) bool {
	return c.value == o.value
}

// EqualUint reports whether c represents the binary value n.
// The operand is encoded before comparing.
func (c Code[U]) EqualUint(n U) bool {
	return c.value == Encode(n)
}

// String returns the representation as a zero-padded bit string.
func (c Code[U]) String() string {
	return fmt.Sprintf("%0*b", int(Width[U]()), uint64(c.value))
}

func bit[U Uint](b bool) U {
	if b {
		return 1
	}
	return 0
}
