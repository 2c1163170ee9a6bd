// Package mabara implements a fixed-capacity sparse set mapping small
// entity indices to fixed-size component records, intended as the
// per-component-type storage primitive of an Entity Component System.
//
// Features:
// - O(1) add, get, has and remove via a sparse/dense index pair.
// - Packed component storage for cache-friendly forward iteration.
// - Swap-with-last removal keeps storage contiguous without holes.
// - Stable in-place sort driven by a caller-supplied comparator.
// - Generic typed accessors layered over the raw byte records.
//
// One Set stores records of a single component type; callers create one
// Set per type. Entity index allocation, multi-component queries and
// persistence are left to calling code. A Set is not safe for concurrent
// use without external synchronization.
package mabara
