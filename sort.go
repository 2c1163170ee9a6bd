package mabara

import "unsafe"

// Sort reorders the dense records into non-decreasing order under compare
// and updates every affected sparse entry to the new positions. compare
// receives two record slices and must return a negative value if a orders
// before b, zero if equivalent, positive otherwise; it must describe a
// consistent total preorder.
//
// The sort is stable: records comparing equal keep their pre-sort relative
// order, so tie order stays deterministic for downstream iteration. It
// runs an insertion sort over a permutation of dense positions, then a
// single rebuild pass applies the permutation to the records and the dense
// array and recomputes the sparse entries.
func (s *Set) Sort(compare func(a, b []byte) int) error {
	if compare == nil {
		debugFail("Sort", "comparator is nil")
		return ErrNilCompare
	}
	if s.count <= 1 {
		return nil
	}
	n := s.count
	order := make([]uint16, n)
	for i := range order {
		order[i] = uint16(i)
	}
	for i := 1; i < n; i++ {
		key := order[i]
		keyRec := s.record(int(key))
		j := i - 1
		for j >= 0 && compare(s.record(int(order[j])), keyRec) > 0 {
			order[j+1] = order[j]
			j--
		}
		order[j+1] = key
	}

	tmpRecords := make([]byte, n*s.componentSize)
	tmpDense := make([]uint16, n)
	for i, old := range order {
		copy(tmpRecords[i*s.componentSize:(i+1)*s.componentSize], s.record(int(old)))
		tmpDense[i] = s.dense[old]
		s.sparse[s.dense[old]] = uint16(i)
	}
	copy(s.components, tmpRecords)
	copy(s.dense, tmpDense)
	return nil
}

// SortFunc sorts a set whose record size matches T using a typed
// comparator. Any sorting context travels in the comparator's closure.
func SortFunc[T any](s *Set, compare func(a, b *T) int) error {
	if compare == nil {
		debugFail("SortFunc", "comparator is nil")
		return ErrNilCompare
	}
	var zero T
	if unsafe.Sizeof(zero) != uintptr(s.componentSize) {
		debugFail("SortFunc", "component type size does not match the set")
		return ErrComponentSize
	}
	return s.Sort(func(a, b []byte) int {
		return compare((*T)(unsafe.Pointer(&a[0])), (*T)(unsafe.Pointer(&b[0])))
	})
}
