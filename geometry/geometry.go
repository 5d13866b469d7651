// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package geometry converts logical matrix coordinates into physical strip
// indices.
//
// A Mapper is built once from a topology.Table using one of two storage
// strategies. Dense retains the table and answers lookups by direct indexing.
// Sparse compacts the active cells into a list of Entry values, trading lookup
// time for not storing the unused grid area. Both answer every query
// identically.
package geometry

import (
	"fmt"

	"github.com/danjacques/gopixelmatrix/topology"
)

// MaxLookupIndex is the largest physical index that Lookup will return.
// Larger indices are clamped to it.
const MaxLookupIndex = 127

// Entry is a single active cell.
type Entry struct {
	X     uint8
	Y     uint8
	Index uint16
}

func (e Entry) String() string { return fmt.Sprintf("(%d, %d)=%d", e.X, e.Y, e.Index) }

// Bounds is the logical size of a matrix.
type Bounds struct {
	Width  int
	Height int
}

// Area returns the number of logical cells within b.
func (b Bounds) Area() int { return b.Width * b.Height }

// Contains returns true if (x, y) falls within b.
func (b Bounds) Contains(x, y int) bool { return x >= 0 && y >= 0 && x < b.Width && y < b.Height }

func (b Bounds) String() string { return fmt.Sprintf("%dx%d", b.Width, b.Height) }

// Mapper resolves logical coordinates to physical strip indices.
//
// Mapper values are immutable once built.
type Mapper interface {
	// Strategy returns the storage strategy backing this Mapper.
	Strategy() Strategy

	// Lookup returns the physical index at (x, y), clamped to MaxLookupIndex.
	//
	// If (x, y) has no element, ok will be false.
	Lookup(x, y int) (index int, ok bool)

	// Bounds returns the logical bounding box of the matrix.
	Bounds() Bounds

	// Len returns the number of active elements.
	Len() int

	// MaxIndex returns the highest physical index of any active element, or -1
	// if there are none.
	MaxIndex() int

	// ForEach calls fn for every active element in row-major order.
	ForEach(fn func(Entry))
}

// Build builds a Mapper for t using strategy s.
func Build(t *topology.Table, s Strategy) Mapper {
	switch s {
	case Dense:
		return newDense(t)
	case Sparse:
		return newSparse(t)
	default:
		panic(fmt.Errorf("unknown strategy: %v", s))
	}
}

func clampIndex(v int) int {
	if v > MaxLookupIndex {
		return MaxLookupIndex
	}
	return v
}
