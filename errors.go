package mabara

import "errors"

var (
	// ErrComponentSize is returned when a component size is zero or negative,
	// or when a component value does not match the record size of the set.
	ErrComponentSize = errors.New("mabara: invalid component size")

	// ErrNilComponent is returned when a required component value is nil.
	ErrNilComponent = errors.New("mabara: component is nil")

	// ErrReservedIndex is returned when an entity index equals the None
	// sentinel, which can never be tracked.
	ErrReservedIndex = errors.New("mabara: entity index is reserved")

	// ErrDuplicateIndex is returned by Add when the entity index is already
	// present in the set.
	ErrDuplicateIndex = errors.New("mabara: entity index already present")

	// ErrFull is returned when the set already tracks MaxCapacity entities.
	ErrFull = errors.New("mabara: set is full")

	// ErrNotPresent is returned by Remove when the entity index is not in
	// the set.
	ErrNotPresent = errors.New("mabara: entity index not present")

	// ErrNilCompare is returned by Sort when the comparator is nil.
	ErrNilCompare = errors.New("mabara: comparator is nil")
)
