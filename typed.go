package mabara

import "unsafe"

// NewFor creates a Set sized for records of type T. Zero-sized types are
// rejected because a record must occupy at least one byte.
func NewFor[T any](opts ...Option) (*Set, error) {
	var zero T
	return New(int(unsafe.Sizeof(zero)), opts...)
}

// AddComponent inserts the entity index with a copy of the component and
// returns a typed pointer to the live record inside the set. The pointer
// stays valid until a later mutation moves the record.
func AddComponent[T any](s *Set, index uint16, component T) (*T, error) {
	if unsafe.Sizeof(component) != uintptr(s.componentSize) {
		debugFail("AddComponent", "component type size does not match the set")
		return nil, ErrComponentSize
	}
	rec, err := s.Add(index, unsafe.Slice((*byte)(unsafe.Pointer(&component)), s.componentSize))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&rec[0])), nil
}

// AddOrReplaceComponent is the typed form of Set.AddOrReplace and carries
// the same caller obligation: the entity index must be known absent.
func AddOrReplaceComponent[T any](s *Set, index uint16, component T) (*T, error) {
	if unsafe.Sizeof(component) != uintptr(s.componentSize) {
		debugFail("AddOrReplaceComponent", "component type size does not match the set")
		return nil, ErrComponentSize
	}
	rec, err := s.AddOrReplace(index, unsafe.Slice((*byte)(unsafe.Pointer(&component)), s.componentSize))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&rec[0])), nil
}

// GetComponent returns a typed pointer to the record for the entity index,
// or nil if the index is not in the set or T does not match the record
// size. Writes through the pointer update the stored record.
func GetComponent[T any](s *Set, index uint16) *T {
	var zero T
	if unsafe.Sizeof(zero) != uintptr(s.componentSize) {
		debugFail("GetComponent", "component type size does not match the set")
		return nil
	}
	rec := s.Get(index)
	if rec == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&rec[0]))
}
