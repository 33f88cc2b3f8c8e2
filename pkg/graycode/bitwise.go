package graycode

// Bitwise operations act on the raw representation with no encode or
// decode translation. A raw integer or boolean operand contributes its
// bits directly, unlike EqualUint which encodes its operand first.

// And returns the bitwise AND of the representations of c and o (c&o).
func (c Code[U]) And(o Code[U]) Code[U] {
	c.value &= o.value
	return c
}

// AndUint returns the bitwise AND of the representation and n (c&n).
func (c Code[U]) AndUint(n U) Code[U] {
	c.value &= n
	return c
}

// AndBool returns the bitwise AND of the representation and b as 0/1.
func (c Code[U]) AndBool(b bool) Code[U] {
	c.value &= bit[U](b)
	return c
}

// Or returns the bitwise OR of the representations of c and o (c|o).
func (c Code[U]) Or(o Code[U]) Code[U] {
	c.value |= o.value
	return c
}

// OrUint returns the bitwise OR of the representation and n (c|n).
func (c Code[U]) OrUint(n U) Code[U] {
	c.value |= n
	return c
}

// OrBool returns the bitwise OR of the representation and b as 0/1.
func (c Code[U]) OrBool(b bool) Code[U] {
	c.value |= bit[U](b)
	return c
}

// Xor returns the bitwise XOR of the representations of c and o (c^o).
func (c Code[U]) Xor(o Code[U]) Code[U] {
	c.value ^= o.value
	return c
}

// XorUint returns the bitwise XOR of the representation and n (c^n).
func (c Code[U]) XorUint(n U) Code[U] {
	c.value ^= n
	return c
}

// XorBool returns the bitwise XOR of the representation and b as 0/1.
func (c Code[U]) XorBool(b bool) Code[U] {
	c.value ^= bit[U](b)
	return c
}

// Not returns the bitwise complement of the representation.
func (c Code[U]) Not() Code[U] {
	c.value = ^c.value
	return c
}

// Lsh returns the representation shifted left by n bits.
func (c Code[U]) Lsh(n uint) Code[U] {
	c.value <<= n
	return c
}

// Rsh returns the representation shifted right by n bits.
func (c Code[U]) Rsh(n uint) Code[U] {
	c.value >>= n
	return c
}

// AndAssign ANDs the representation of o into c.
func (c *Code[U]) AndAssign(o Code[U]) {
	c.value &= o.value
}

// AndAssignUint ANDs the raw bits of n into c.
func (c *Code[U]) AndAssignUint(n U) {
	c.value &= n
}

// AndAssignBool ANDs b as 0/1 into c.
func (c *Code[U]) AndAssignBool(b bool) {
	c.value &= bit[U](b)
}

// OrAssign ORs the representation of o into c.
func (c *Code[U]) OrAssign(o Code[U]) {
	c.value |= o.value
}

// OrAssignUint ORs the raw bits of n into c.
func (c *Code[U]) OrAssignUint(n U) {
	c.value |= n
}

// OrAssignBool ORs b as 0/1 into c.
func (c *Code[U]) OrAssignBool(b bool) {
	c.value |= bit[U](b)
}

// XorAssign XORs the representation of o into c.
func (c *Code[U]) XorAssign(o Code[U]) {
	c.value ^= o.value
}

// XorAssignUint XORs the raw bits of n into c.
func (c *Code[U]) XorAssignUint(n U) {
	c.value ^= n
}

// XorAssignBool XORs b as 0/1 into c.
func (c *Code[U]) XorAssignBool(b bool) {
	c.value ^= bit[U](b)
}

// LshAssign shifts the representation left by n bits in place.
func (c *Code[U]) LshAssign(n uint) {
	c.value <<= n
}

// RshAssign shifts the representation right by n bits in place.
func (c *Code[U]) RshAssign(n uint) {
	c.value >>= n
}

// AndInto ANDs the representation of rhs into the raw integer lhs.
func AndInto[U Uint](lhs *U, rhs Code[U]) {
	*lhs &= rhs.value
}

// OrInto ORs the representation of rhs into the raw integer lhs.
func OrInto[U Uint](lhs *U, rhs Code[U]) {
	*lhs |= rhs.value
}

// XorInto XORs the representation of rhs into the raw integer lhs.
func XorInto[U Uint](lhs *U, rhs Code[U]) {
	*lhs ^= rhs.value
}

// Swap exchanges the representations of a and b verbatim.
func Swap[U Uint](a, b *Code[U]) {
	a.value, b.value = b.value, a.value
}
