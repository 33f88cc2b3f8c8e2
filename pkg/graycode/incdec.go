package graycode

// leftmostBit returns the pattern with only the highest bit of U set.
func leftmostBit[U Uint]() U {
	return U(1) << (Width[U]() - 1)
}

// Inc steps the code to the Gray code of value+1 without decoding.
// Exactly one bit of the representation changes. The maximum value
// wraps around to zero.
//
// A code with even parity always increments by toggling bit 0; a code
// with odd parity toggles the bit above its lowest set bit.
func (c *Code[U]) Inc() {
	if IsOdd(*c) {
		if c.value == leftmostBit[U]() {
			c.value = 0
		} else {
			y := c.value & -c.value
			c.value ^= y << 1
		}
	} else {
		c.value ^= 1
	}
}

// Dec steps the code to the Gray code of value-1 without decoding.
// Exactly one bit of the representation changes. Zero wraps around to
// the maximum value.
func (c *Code[U]) Dec() {
	if IsOdd(*c) {
		c.value ^= 1
	} else {
		if c.value == 0 {
			c.value = leftmostBit[U]()
		} else {
			y := c.value & -c.value
			c.value ^= y << 1
		}
	}
}

// PostInc increments the code and returns the code it held before.
func (c *Code[U]) PostInc() Code[U] {
	res := *c
	c.Inc()
	return res
}

// PostDec decrements the code and returns the code it held before.
func (c *Code[U]) PostDec() Code[U] {
	res := *c
	c.Dec()
	return res
}

// Next returns the code following c in the Gray sequence.
func (c Code[U]) Next() Code[U] {
	c.Inc()
	return c
}

// Prev returns the code preceding c in the Gray sequence.
func (c Code[U]) Prev() Code[U] {
	c.Dec()
	return c
}
