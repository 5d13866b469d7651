// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package geometry

import (
	"github.com/danjacques/gopixelmatrix/topology"
)

// dense answers lookups directly from the retained table.
//
// Its bounds are the table's full dimensions.
type dense struct {
	table    *topology.Table
	active   int
	maxIndex int
}

var _ Mapper = (*dense)(nil)

func newDense(t *topology.Table) *dense {
	d := dense{
		table:    t,
		maxIndex: -1,
	}
	for _, c := range t.Cells {
		if c == topology.Inactive {
			continue
		}
		d.active++
		if int(c) > d.maxIndex {
			d.maxIndex = int(c)
		}
	}
	return &d
}

func (d *dense) Strategy() Strategy { return Dense }

func (d *dense) Lookup(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= d.table.Cols || y >= d.table.Rows {
		return -1, false
	}
	c := d.table.Cells[y*d.table.Cols+x]
	if c == topology.Inactive {
		return -1, false
	}
	return clampIndex(int(c)), true
}

func (d *dense) Bounds() Bounds { return Bounds{Width: d.table.Cols, Height: d.table.Rows} }
func (d *dense) Len() int       { return d.active }
func (d *dense) MaxIndex() int  { return d.maxIndex }

func (d *dense) ForEach(fn func(Entry)) {
	t := d.table
	for y := 0; y < t.Rows; y++ {
		for x := 0; x < t.Cols; x++ {
			if c := t.Cells[y*t.Cols+x]; c != topology.Inactive {
				fn(Entry{X: uint8(x), Y: uint8(y), Index: uint16(c)})
			}
		}
	}
}
