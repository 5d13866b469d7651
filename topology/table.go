// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package topology describes which physical strip element, if any, sits at
// each logical cell of a matrix.
//
// A Table is a rectangular, row-major grid of bytes. A cell holding Inactive
// has no element; any other value is the 0-based index of the element in the
// strip's linear address space.
package topology

import (
	"fmt"

	"github.com/pkg/errors"
)

// Inactive is the sentinel cell value for "no element here".
const Inactive = 255

// Table is a topology table. It is treated as immutable once built.
type Table struct {
	Rows  int
	Cols  int
	Cells []byte
}

// NewTable builds a Table from row-major cells.
func NewTable(rows, cols int, cells []byte) (*Table, error) {
	t := &Table{Rows: rows, Cols: cols, Cells: cells}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// FromRows builds a Table from a slice of equal-length rows.
func FromRows(rows [][]byte) (*Table, error) {
	t := Table{Rows: len(rows)}
	if len(rows) > 0 {
		t.Cols = len(rows[0])
	}
	t.Cells = make([]byte, 0, t.Rows*t.Cols)
	for y, row := range rows {
		if len(row) != t.Cols {
			return nil, errors.Errorf("row %d has %d column(s), expected %d", y, len(row), t.Cols)
		}
		t.Cells = append(t.Cells, row...)
	}
	return &t, nil
}

// MustFromRows is FromRows that panics on error. It is intended for static
// tables.
func MustFromRows(rows [][]byte) *Table {
	t, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that t's dimensions agree with its cell data.
func (t *Table) Validate() error {
	switch {
	case t.Rows < 0 || t.Cols < 0:
		return errors.Errorf("invalid dimensions %dx%d", t.Rows, t.Cols)
	case t.Rows > 256 || t.Cols > 256:
		// Logical coordinates are bytes.
		return errors.Errorf("dimensions %dx%d exceed 256x256", t.Rows, t.Cols)
	case len(t.Cells) != t.Rows*t.Cols:
		return errors.Errorf("%d cell(s) for %dx%d table", len(t.Cells), t.Rows, t.Cols)
	}
	return nil
}

// At returns the cell at (x, y). Cells outside of the table are Inactive.
func (t *Table) At(x, y int) byte {
	if x < 0 || y < 0 || x >= t.Cols || y >= t.Rows {
		return Inactive
	}
	return t.Cells[y*t.Cols+x]
}

// Active returns the number of cells that hold an element.
func (t *Table) Active() (n int) {
	for _, c := range t.Cells {
		if c != Inactive {
			n++
		}
	}
	return
}

func (t *Table) String() string {
	return fmt.Sprintf("Table{%dx%d, %d active}", t.Cols, t.Rows, t.Active())
}
