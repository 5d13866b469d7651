// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package geometry

import (
	"github.com/danjacques/gopixelmatrix/topology"
)

// sparse holds the compacted list of active entries in table scan order.
//
// Its bounds cover only the active entries.
type sparse struct {
	entries  []Entry
	bounds   Bounds
	maxIndex int
}

var _ Mapper = (*sparse)(nil)

func newSparse(t *topology.Table) *sparse {
	s := sparse{
		entries:  make([]Entry, 0, t.Active()),
		maxIndex: -1,
	}
	for y := 0; y < t.Rows; y++ {
		for x := 0; x < t.Cols; x++ {
			if c := t.Cells[y*t.Cols+x]; c != topology.Inactive {
				s.entries = append(s.entries, Entry{X: uint8(x), Y: uint8(y), Index: uint16(c)})
			}
		}
	}
	s.computeBounds()
	return &s
}

func (s *sparse) computeBounds() {
	if len(s.entries) == 0 {
		return
	}

	minX, maxX, minY, maxY := 255, 0, 255, 0
	for _, e := range s.entries {
		x, y := int(e.X), int(e.Y)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
		if int(e.Index) > s.maxIndex {
			s.maxIndex = int(e.Index)
		}
	}
	s.bounds = Bounds{Width: maxX - minX + 1, Height: maxY - minY + 1}
}

func (s *sparse) Strategy() Strategy { return Sparse }

func (s *sparse) Lookup(x, y int) (int, bool) {
	for _, e := range s.entries {
		if int(e.X) == x && int(e.Y) == y {
			return clampIndex(int(e.Index)), true
		}
	}
	return -1, false
}

func (s *sparse) Bounds() Bounds { return s.bounds }
func (s *sparse) Len() int       { return len(s.entries) }
func (s *sparse) MaxIndex() int  { return s.maxIndex }

func (s *sparse) ForEach(fn func(Entry)) {
	for _, e := range s.entries {
		fn(e)
	}
}
