package graycode

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncAgreement(t *testing.T) {
	// Stepping the representation must agree with incrementing the
	// decoded value and re-encoding, for every value including the
	// wrap at the top of the range.
	for n := 0; n <= 255; n++ {
		gr := New(uint8(n))
		gr.Inc()
		if !gr.Equal(New(uint8(n) + 1)) {
			t.Errorf("inc from %d: -want %#b, +got: %#b\n", n, New(uint8(n)+1).Bits(), gr.Bits())
		}
	}
	for n := 0; n <= 65535; n++ {
		gr := New(uint16(n))
		gr.Inc()
		if !gr.Equal(New(uint16(n) + 1)) {
			t.Errorf("inc from %d: -want %#b, +got: %#b\n", n, New(uint16(n)+1).Bits(), gr.Bits())
		}
	}
}

func TestDecAgreement(t *testing.T) {
	for n := 0; n <= 255; n++ {
		gr := New(uint8(n))
		gr.Dec()
		if !gr.Equal(New(uint8(n) - 1)) {
			t.Errorf("dec from %d: -want %#b, +got: %#b\n", n, New(uint8(n)-1).Bits(), gr.Bits())
		}
	}
}

func TestIncSingleBitStep(t *testing.T) {
	for n := 0; n <= 255; n++ {
		before := New(uint8(n))
		after := before.Next()
		diff := before.Bits() ^ after.Bits()
		if bits.OnesCount8(diff) != 1 {
			t.Errorf("step from %d flips %d bits\n", n, bits.OnesCount8(diff))
		}
	}
}

func TestIncWraparound(t *testing.T) {
	gr := New[uint8](255)
	gr.Inc()
	assert.Equal(t, uint8(0), gr.Bits())

	gr32 := New[uint32](^uint32(0))
	gr32.Inc()
	assert.Equal(t, uint32(0), gr32.Bits())
}

func TestDecWraparound(t *testing.T) {
	gr := New[uint8](0)
	gr.Dec()
	assert.True(t, gr.Equal(New[uint8](255)))

	gr32 := New[uint32](0)
	gr32.Dec()
	assert.True(t, gr32.Equal(New(^uint32(0))))
}

func TestIncDecInverse(t *testing.T) {
	for n := 0; n <= 255; n++ {
		gr := New(uint8(n))
		gr.Inc()
		gr.Dec()
		if !gr.EqualUint(uint8(n)) {
			t.Errorf("dec(inc(%d)): +got: %d\n", n, gr.Uint())
		}
		gr.Dec()
		gr.Inc()
		if !gr.EqualUint(uint8(n)) {
			t.Errorf("inc(dec(%d)): +got: %d\n", n, gr.Uint())
		}
	}
}

func TestPostInc(t *testing.T) {
	gr := New[uint16](9)

	old := gr.PostInc()
	assert.True(t, old.EqualUint(9))
	assert.True(t, gr.EqualUint(10))

	old = gr.PostDec()
	assert.True(t, old.EqualUint(10))
	assert.True(t, gr.EqualUint(9))
}

func TestNextPrev(t *testing.T) {
	gr := New[uint16](35)

	assert.True(t, gr.Next().EqualUint(36))
	assert.True(t, gr.Prev().EqualUint(34))
	// the receiver is left untouched
	assert.True(t, gr.EqualUint(35))
}

func TestIncWalk(t *testing.T) {
	i := uint32(0)
	for val := New[uint32](0); !val.Equal(New[uint32](10)); val.Inc() {
		if !val.EqualUint(i) {
			t.Errorf("walk up: -want %d, +got: %d\n", i, val.Uint())
		}
		i++
	}

	i = 35
	for val := New[uint32](35); !val.Equal(New[uint32](23)); val.Dec() {
		if !val.EqualUint(i) {
			t.Errorf("walk down: -want %d, +got: %d\n", i, val.Uint())
		}
		i--
	}
}
