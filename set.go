package mabara

// MaxCapacity is the fixed number of distinct entity indices a Set can
// track. Valid indices are [0, MaxCapacity); the value MaxCapacity itself
// is the None sentinel.
const MaxCapacity = 65535

// None marks an unused sparse or dense slot. It is never a valid entity
// index and never a valid dense position.
const None uint16 = 65535

// Set is a sparse set associating entity indices with fixed-size component
// records. The sparse array maps an entity index to its position in the
// dense array, and the dense array holds the active entity indices packed
// together, parallel to the component storage. All backing memory is
// allocated once at construction; a Set never grows.
type Set struct {
	sparse        []uint16 // entity index -> dense position, or None
	dense         []uint16 // packed active entity indices
	components    []byte   // packed records, parallel to dense
	events        *EventBus
	componentSize int
	count         int
}

// New creates an empty Set whose records are componentSize bytes each.
// The full capacity is reserved up front, so a Set costs
// MaxCapacity*componentSize bytes of component storage plus the two index
// arrays regardless of how many entities it ends up tracking.
func New(componentSize int, opts ...Option) (*Set, error) {
	if componentSize <= 0 {
		debugFail("New", "component size must be positive")
		return nil, ErrComponentSize
	}
	s := &Set{
		sparse:        make([]uint16, MaxCapacity),
		dense:         make([]uint16, MaxCapacity),
		components:    make([]byte, MaxCapacity*componentSize),
		componentSize: componentSize,
	}
	for i := range s.sparse {
		s.sparse[i] = None
		s.dense[i] = None
	}
	for _, opt := range opts {
		opt.apply(s)
	}
	return s, nil
}

// Len returns the number of entities currently in the set.
func (s *Set) Len() int {
	return s.count
}

// ComponentSize returns the record size in bytes fixed at construction.
func (s *Set) ComponentSize() int {
	return s.componentSize
}

// Has reports whether the entity index is in the set. It is always false
// for the reserved None index.
func (s *Set) Has(index uint16) bool {
	if index == None {
		debugFail("Has", "entity index is reserved")
		return false
	}
	return s.sparse[index] != None
}

// Get returns the live component record for the entity index, or nil if
// the index is not in the set. Absence is an expected outcome, not an
// error. The returned slice aliases the set's storage: writes through it
// update the stored record, and it is only valid until the next mutation
// moves the record.
func (s *Set) Get(index uint16) []byte {
	if index == None {
		debugFail("Get", "entity index is reserved")
		return nil
	}
	pos := s.sparse[index]
	if pos == None {
		return nil
	}
	return s.record(int(pos))
}

// Add inserts the entity index with a copy of the component record and
// returns the live record inside the set. It fails without mutating the
// set if the index is already present, the set is full, or the arguments
// are invalid.
func (s *Set) Add(index uint16, component []byte) ([]byte, error) {
	if err := s.checkArgs("Add", index, component); err != nil {
		return nil, err
	}
	if s.count == MaxCapacity {
		debugFail("Add", "set is full")
		return nil, ErrFull
	}
	if s.sparse[index] != None {
		debugFail("Add", "entity index already present")
		return nil, ErrDuplicateIndex
	}
	target := s.append(index, component)
	if s.events != nil {
		Publish(s.events, ComponentAdded{Index: index})
	}
	return target, nil
}

// AddOrReplace inserts the entity index like Add but performs no duplicate
// check: it always writes the record at the next free dense slot and
// increments the count. Callers must only use it on an index they have
// verified to be absent, or knowingly accept a stale duplicate slot;
// Add is the safe default.
func (s *Set) AddOrReplace(index uint16, component []byte) ([]byte, error) {
	if err := s.checkArgs("AddOrReplace", index, component); err != nil {
		return nil, err
	}
	if s.count == MaxCapacity {
		debugFail("AddOrReplace", "set is full")
		return nil, ErrFull
	}
	target := s.append(index, component)
	if s.events != nil {
		Publish(s.events, ComponentAdded{Index: index})
	}
	return target, nil
}

// Remove deletes the entity index from the set. The record of the entity
// occupying the last dense slot is moved into the vacated slot so storage
// stays packed; removal is O(1) but does not preserve dense order.
func (s *Set) Remove(index uint16) error {
	if index == None {
		debugFail("Remove", "entity index is reserved")
		return ErrReservedIndex
	}
	pos := s.sparse[index]
	if pos == None {
		debugFail("Remove", "entity index not present")
		return ErrNotPresent
	}
	last := s.count - 1
	copy(s.record(int(pos)), s.record(last))

	moved := s.dense[last]
	s.dense[pos] = moved
	s.sparse[moved] = pos

	s.dense[last] = None
	s.sparse[index] = None
	s.count--
	if s.events != nil {
		Publish(s.events, ComponentRemoved{Index: index})
	}
	return nil
}

// Clear removes every entity from the set, keeping the backing allocation
// for reuse. Only the live dense prefix is touched, so Clear is O(Len).
func (s *Set) Clear() {
	for i := 0; i < s.count; i++ {
		s.sparse[s.dense[i]] = None
		s.dense[i] = None
	}
	s.count = 0
}

// Close releases the set's backing allocation to the garbage collector.
// The set must not be used afterwards.
func (s *Set) Close() {
	s.sparse = nil
	s.dense = nil
	s.components = nil
	s.count = 0
}

// append places the record at dense slot count and wires both index
// arrays. Callers have already validated the arguments.
func (s *Set) append(index uint16, component []byte) []byte {
	s.sparse[index] = uint16(s.count)
	s.dense[s.count] = index
	target := s.record(s.count)
	copy(target, component)
	s.count++
	return target
}

// record returns the storage bytes of a dense slot.
func (s *Set) record(pos int) []byte {
	off := pos * s.componentSize
	return s.components[off : off+s.componentSize]
}

func (s *Set) checkArgs(op string, index uint16, component []byte) error {
	if index == None {
		debugFail(op, "entity index is reserved")
		return ErrReservedIndex
	}
	if component == nil {
		debugFail(op, "component is nil")
		return ErrNilComponent
	}
	if len(component) != s.componentSize {
		debugFail(op, "component length does not match the set")
		return ErrComponentSize
	}
	return nil
}
