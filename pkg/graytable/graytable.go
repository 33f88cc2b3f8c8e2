package graytable

import (
	"errors"
	"fmt"
	"sync"

	"github.com/henderiw/graycode/pkg/graycode"
	"k8s.io/apimachinery/pkg/labels"
)

// Table hands out identifiers from the full W-bit space of U. Dynamic
// claims walk the Gray code cycle, so two ids claimed one after the
// other differ in exactly one bit of their encoded form. Entries carry
// label metadata for selection.
type Table[U graycode.Uint] interface {
	Get(id U) (labels.Set, error)
	Claim(id U, d labels.Set) error
	ClaimDynamic(d labels.Set) (graycode.Code[U], error)
	Release(id U) error
	Update(id U, d labels.Set) error

	Count() int
	Has(id U) bool

	IsFree(id U) bool
	FindFree() (U, error)

	GetAll() map[U]labels.Set
	GetByLabel(selector labels.Selector) map[U]labels.Set
}

type ValidationFn[U graycode.Uint] func(id U) error

// New creates a table, optionally seeded with reserved entries. The
// validation fn, when set, can veto ids for regular claims; seeded
// entries bypass it.
func New[U graycode.Uint](initEntries map[U]labels.Set, v ValidationFn[U]) (Table[U], error) {
	r := &grayTable[U]{
		m:          new(sync.RWMutex),
		table:      map[U]labels.Set{},
		validateFn: v,
	}

	var errm error
	for id, d := range initEntries {
		if err := r.add(id, d, true); err != nil {
			errm = errors.Join(errm, err)
		}
	}

	return r, errm
}

type grayTable[U graycode.Uint] struct {
	m     *sync.RWMutex
	table map[U]labels.Set
	// cursor is the code of the last dynamically claimed id; the next
	// dynamic claim resumes stepping from here.
	cursor     graycode.Code[U]
	validateFn ValidationFn[U]
}

func (r *grayTable[U]) validate(id U, init bool) error {
	if r.validateFn != nil && !init {
		if err := r.validateFn(id); err != nil {
			return err
		}
	}
	return nil
}

func (r *grayTable[U]) add(id U, d labels.Set, init bool) error {
	if err := r.validate(id, init); err != nil {
		return err
	}
	if _, ok := r.table[id]; ok {
		return fmt.Errorf("id %d is already claimed", uint64(id))
	}
	r.table[id] = d
	return nil
}

func (r *grayTable[U]) Get(id U) (labels.Set, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	d, ok := r.table[id]
	if !ok {
		return nil, fmt.Errorf("no match found for: %v", uint64(id))
	}
	return d, nil
}

func (r *grayTable[U]) Claim(id U, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.add(id, d, false)
}

func (r *grayTable[U]) ClaimDynamic(d labels.Set) (graycode.Code[U], error) {
	r.m.Lock()
	defer r.m.Unlock()

	c, err := r.findFree()
	if err != nil {
		return graycode.Code[U]{}, err
	}
	if err := r.add(c.Uint(), d, false); err != nil {
		return graycode.Code[U]{}, err
	}
	r.cursor = c
	return c, nil
}

func (r *grayTable[U]) Release(id U) error {
	r.m.Lock()
	defer r.m.Unlock()

	delete(r.table, id)
	return nil
}

func (r *grayTable[U]) Update(id U, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	if _, ok := r.table[id]; !ok {
		return fmt.Errorf("no match found for: %v", uint64(id))
	}
	r.table[id] = d
	return nil
}

func (r *grayTable[U]) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.table)
}

func (r *grayTable[U]) Has(id U) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return ok
}

func (r *grayTable[U]) IsFree(id U) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	_, ok := r.table[id]
	return !ok
}

func (r *grayTable[U]) FindFree() (U, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	c, err := r.findFree()
	if err != nil {
		return 0, err
	}
	return c.Uint(), nil
}

// findFree steps the Gray cycle from the cursor until it reaches a
// free, valid id. It fails when the walk comes back around to the
// cursor without finding one.
func (r *grayTable[U]) findFree() (graycode.Code[U], error) {
	c := r.cursor
	for {
		c.Inc()
		id := c.Uint()
		if _, ok := r.table[id]; !ok {
			if err := r.validate(id, false); err == nil {
				return c, nil
			}
		}
		if c.Equal(r.cursor) {
			return graycode.Code[U]{}, fmt.Errorf("no free entry found")
		}
	}
}

func (r *grayTable[U]) GetAll() map[U]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := map[U]labels.Set{}
	for id, d := range r.table {
		entries[id] = d
	}
	return entries
}

func (r *grayTable[U]) GetByLabel(selector labels.Selector) map[U]labels.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := map[U]labels.Set{}
	for id, d := range r.table {
		if selector.Matches(d) {
			entries[id] = d
		}
	}
	return entries
}
