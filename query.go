package mabara

import "unsafe"

// Iter is a forward-only cursor over the dense records of a Set. The
// sequence is finite and not restartable; construct a fresh Iter to
// traverse again. Traversal order is dense order, which equals insertion
// order only until a Remove or Sort reorders the storage.
//
// An Iter reads the live set, not a snapshot. Removing entities while
// iterating interacts with swap-removal: a not-yet-visited entity moved
// into an already-visited slot is skipped, and a visited entity moved
// forward reappears. Serializing mutation against iteration is the
// caller's responsibility.
type Iter struct {
	set    *Set
	cursor int
	pos    int
	entity uint16
}

// Iter returns a cursor positioned before the first dense slot.
func (s *Set) Iter() Iter {
	return Iter{set: s}
}

// Next advances to the next entity. Returns false when the live range is
// exhausted.
func (self *Iter) Next() bool {
	if self.cursor >= self.set.count {
		return false
	}
	self.pos = self.cursor
	self.entity = self.set.dense[self.cursor]
	self.cursor++
	return true
}

// Entity returns the entity index at the current position.
func (self *Iter) Entity() uint16 {
	return self.entity
}

// Component returns the record at the current position. The slice aliases
// the set's storage, like Set.Get.
func (self *Iter) Component() []byte {
	return self.set.record(self.pos)
}

// Query is a typed cursor over the dense records of a Set. It carries the
// same live-view contract as Iter.
type Query[T any] struct {
	set    *Set
	base   unsafe.Pointer
	stride uintptr
	cursor int
	pos    int
	entity uint16
}

// NewQuery creates a typed cursor for a set whose record size matches T.
// On a size mismatch the returned query yields nothing.
func NewQuery[T any](s *Set) Query[T] {
	var zero T
	if unsafe.Sizeof(zero) != uintptr(s.componentSize) {
		debugFail("NewQuery", "component type size does not match the set")
		return Query[T]{}
	}
	q := Query[T]{set: s, stride: uintptr(s.componentSize)}
	if len(s.components) > 0 {
		q.base = unsafe.Pointer(&s.components[0])
	}
	return q
}

// Next advances to the next entity. Returns false when the live range is
// exhausted.
func (self *Query[T]) Next() bool {
	if self.set == nil || self.cursor >= self.set.count {
		return false
	}
	self.pos = self.cursor
	self.entity = self.set.dense[self.cursor]
	self.cursor++
	return true
}

// Get returns a pointer to the record at the current position.
func (self *Query[T]) Get() *T {
	p := unsafe.Pointer(uintptr(self.base) + uintptr(self.pos)*self.stride)
	return (*T)(p)
}

// Entity returns the entity index at the current position.
func (self *Query[T]) Entity() uint16 {
	return self.entity
}
