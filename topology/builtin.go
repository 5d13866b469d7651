// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package topology

var (
	roundTable      = generate(12, roundSpan)
	hexagonalTable  = generate(14, hexagonalSpan)
	triangularTable = generate(16, triangularSpan)
)

// spanFunc returns the half-open range of active columns [start, end) in row y
// of a size x size table.
type spanFunc func(size, y int) (start, end int)

// roundSpan covers every cell whose center lies within the inscribed circle.
// Distances are computed on doubled coordinates to stay in integers.
func roundSpan(size, y int) (start, end int) {
	dy := 2*y - (size - 1)
	start, end = size, size
	for x := 0; x < size; x++ {
		dx := 2*x - (size - 1)
		if dx*dx+dy*dy <= size*size {
			if start == size {
				start = x
			}
			end = x + 1
		}
	}
	return
}

// hexagonalSpan is full-width at the middle rows and narrows by one cell per
// side every two rows towards the top and bottom.
func hexagonalSpan(size, y int) (start, end int) {
	d := 2*y - (size - 1)
	if d < 0 {
		d = -d
	}
	half := size/2 - (d-1)/4
	return size/2 - half, size/2 + half
}

// triangularSpan grows by one cell per side every two rows, with its apex in
// the top row.
func triangularSpan(size, y int) (start, end int) {
	half := y/2 + 1
	return size/2 - half, size/2 + half
}

// generate builds a size x size table from span, numbering elements in
// serpentine order: even rows run left to right, odd rows right to left.
func generate(size int, span spanFunc) *Table {
	t := Table{
		Rows:  size,
		Cols:  size,
		Cells: make([]byte, size*size),
	}
	for i := range t.Cells {
		t.Cells[i] = Inactive
	}

	next := 0
	for y := 0; y < size; y++ {
		start, end := span(size, y)
		for i := 0; i < end-start; i++ {
			x := start + i
			if y%2 == 1 {
				x = end - 1 - i
			}
			t.Cells[y*size+x] = byte(next)
			next++
		}
	}
	return &t
}
