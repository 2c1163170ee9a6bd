package mabara_test

import (
	"encoding/binary"
	"testing"

	"github.com/edwinsyarief/mabara"
	"github.com/stretchr/testify/require"
)

// u32 encodes a little-endian 4-byte record for the raw API tests.
func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func TestNew(t *testing.T) {
	_, err := mabara.New(0)
	require.ErrorIs(t, err, mabara.ErrComponentSize)

	_, err = mabara.New(-8)
	require.ErrorIs(t, err, mabara.ErrComponentSize)

	set, err := mabara.New(4)
	require.NoError(t, err)
	require.Equal(t, 0, set.Len())
	require.Equal(t, 4, set.ComponentSize())
}

func TestAddGet(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	rec, err := set.Add(7, u32(700))
	require.NoError(t, err)
	require.Equal(t, u32(700), rec)

	require.True(t, set.Has(7))
	require.Equal(t, u32(700), set.Get(7))
	require.Equal(t, 1, set.Len())

	// Absence is not an error.
	require.False(t, set.Has(8))
	require.Nil(t, set.Get(8))
}

func TestAddInvalidArguments(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	_, err = set.Add(mabara.None, u32(1))
	require.ErrorIs(t, err, mabara.ErrReservedIndex)

	_, err = set.Add(1, nil)
	require.ErrorIs(t, err, mabara.ErrNilComponent)

	_, err = set.Add(1, []byte{1, 2})
	require.ErrorIs(t, err, mabara.ErrComponentSize)

	require.Equal(t, 0, set.Len())
	require.False(t, set.Has(mabara.None))
}

func TestAddDuplicate(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	_, err = set.Add(3, u32(100))
	require.NoError(t, err)

	_, err = set.Add(3, u32(999))
	require.ErrorIs(t, err, mabara.ErrDuplicateIndex)

	// The first record is untouched.
	require.Equal(t, u32(100), set.Get(3))
	require.Equal(t, 1, set.Len())
}

func TestAddOrReplace(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	// On a verified-absent index it behaves exactly like Add.
	rec, err := set.AddOrReplace(9, u32(90))
	require.NoError(t, err)
	require.Equal(t, u32(90), rec)
	require.Equal(t, u32(90), set.Get(9))
	require.Equal(t, 1, set.Len())

	_, err = set.AddOrReplace(mabara.None, u32(1))
	require.ErrorIs(t, err, mabara.ErrReservedIndex)
	_, err = set.AddOrReplace(1, nil)
	require.ErrorIs(t, err, mabara.ErrNilComponent)
}

func TestRemove(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	for i, v := range []uint32{100, 200, 300} {
		_, err = set.Add(uint16(i+1), u32(v))
		require.NoError(t, err)
	}

	require.NoError(t, set.Remove(2))
	require.False(t, set.Has(2))
	require.Nil(t, set.Get(2))
	require.Equal(t, 2, set.Len())

	// Other associations survive the swap.
	require.Equal(t, u32(100), set.Get(1))
	require.Equal(t, u32(300), set.Get(3))

	require.ErrorIs(t, set.Remove(2), mabara.ErrNotPresent)
	require.ErrorIs(t, set.Remove(mabara.None), mabara.ErrReservedIndex)
	require.Equal(t, 2, set.Len())
}

func TestRemoveRelocatesLast(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	for i, v := range []uint32{10, 20, 30} {
		_, err = set.Add(uint16(i+1), u32(v))
		require.NoError(t, err)
	}

	// Removing the first entity moves the last one into its slot.
	require.NoError(t, set.Remove(1))
	it := set.Iter()
	require.True(t, it.Next())
	require.Equal(t, uint16(3), it.Entity())
	require.Equal(t, u32(30), it.Component())
	require.True(t, it.Next())
	require.Equal(t, uint16(2), it.Entity())
	require.False(t, it.Next())
}

func TestRemoveLastEntity(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	_, err = set.Add(5, u32(50))
	require.NoError(t, err)
	require.NoError(t, set.Remove(5))
	require.Equal(t, 0, set.Len())
	require.False(t, set.Has(5))

	// The slot is reusable afterwards.
	_, err = set.Add(5, u32(51))
	require.NoError(t, err)
	require.Equal(t, u32(51), set.Get(5))
}

func TestFull(t *testing.T) {
	set, err := mabara.New(1)
	require.NoError(t, err)

	for i := 0; i < mabara.MaxCapacity; i++ {
		_, err = set.Add(uint16(i), []byte{byte(i)})
		require.NoError(t, err)
	}
	require.Equal(t, mabara.MaxCapacity, set.Len())

	// Every index is occupied now, so re-adding any of them reports the
	// capacity exhaustion before the duplicate.
	_, err = set.Add(0, []byte{1})
	require.ErrorIs(t, err, mabara.ErrFull)
	_, err = set.AddOrReplace(0, []byte{1})
	require.ErrorIs(t, err, mabara.ErrFull)
	require.Equal(t, mabara.MaxCapacity, set.Len())

	// Removing one frees exactly one slot.
	require.NoError(t, set.Remove(1234))
	_, err = set.Add(1234, []byte{9})
	require.NoError(t, err)
}

func TestClear(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		_, err = set.Add(uint16(i), u32(uint32(i)))
		require.NoError(t, err)
	}
	set.Clear()
	require.Equal(t, 0, set.Len())
	for i := 0; i < 10; i++ {
		require.False(t, set.Has(uint16(i)))
	}

	// The set stays usable after Clear.
	_, err = set.Add(3, u32(33))
	require.NoError(t, err)
	require.Equal(t, u32(33), set.Get(3))
}

func TestClose(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)
	_, err = set.Add(1, u32(1))
	require.NoError(t, err)

	set.Close()
	require.Equal(t, 0, set.Len())
}

func TestGetAliasesStorage(t *testing.T) {
	set, err := mabara.New(4)
	require.NoError(t, err)

	_, err = set.Add(4, u32(40))
	require.NoError(t, err)

	rec := set.Get(4)
	copy(rec, u32(41))
	require.Equal(t, u32(41), set.Get(4))
}
