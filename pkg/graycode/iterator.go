package graycode

import "fmt"

// Iterator walks the Gray sequence from a starting code, one single-bit
// step at a time, wrapping circularly at the end of the W-bit cycle.
type Iterator[U Uint] struct {
	current Code[U]
	n       uint64
	count   uint64
}

// Iterate returns an iterator yielding count consecutive codes,
// starting at start.
func Iterate[U Uint](start Code[U], count uint64) *Iterator[U] {
	return &Iterator[U]{current: start, count: count}
}

func (r *Iterator[U]) Next() bool {
	if r.n >= r.count {
		return false
	}
	if r.n > 0 {
		r.current.Inc()
	}
	r.n++
	return true
}

// Value returns the code at the iterator position.
func (r *Iterator[U]) Value() Code[U] {
	return r.current
}

// Sequence returns the 2^n codes of the n-bit Gray cycle in sequence
// order, starting at zero.
func Sequence[U Uint](n uint) ([]Code[U], error) {
	if n > Width[U]() {
		return nil, fmt.Errorf("bit size %d is bigger then max allowed size: %d", n, Width[U]())
	}
	if n > 32 {
		return nil, fmt.Errorf("bit size %d yields too many codes to enumerate", n)
	}
	codes := make([]Code[U], 0, uint64(1)<<n)
	for i := uint64(0); i < uint64(1)<<n; i++ {
		codes = append(codes, New(U(i)))
	}
	return codes, nil
}
