// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package matrix

import (
	"strings"

	"github.com/danjacques/gopixelmatrix/geometry"

	"github.com/pkg/errors"
)

// Image is a monochrome mask. Set cells are lit.
type Image struct {
	rows  int
	cols  int
	cells []bool
}

// NewImage creates an Image from row-major cells.
func NewImage(rows, cols int, cells []bool) (*Image, error) {
	if rows < 0 || cols < 0 || len(cells) != rows*cols {
		return nil, errors.Errorf("%d cell(s) for %dx%d image", len(cells), cols, rows)
	}
	return &Image{rows: rows, cols: cols, cells: cells}, nil
}

// ImageFromRows creates an Image from equal-length rows.
func ImageFromRows(rows [][]bool) (*Image, error) {
	img := Image{rows: len(rows)}
	if len(rows) > 0 {
		img.cols = len(rows[0])
	}
	img.cells = make([]bool, 0, img.rows*img.cols)
	for y, row := range rows {
		if len(row) != img.cols {
			return nil, errors.Errorf("image row %d has %d column(s), expected %d", y, len(row), img.cols)
		}
		img.cells = append(img.cells, row...)
	}
	return &img, nil
}

// ParseImage creates an Image from text rows. '#', 'X', 'x', '*' and '1' are
// set cells; any other character is clear.
func ParseImage(rows ...string) (*Image, error) {
	bools := make([][]bool, len(rows))
	for y, row := range rows {
		bools[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			bools[y][x] = strings.IndexByte("#Xx*1", row[x]) >= 0
		}
	}
	return ImageFromRows(bools)
}

// MustParseImage is ParseImage that panics on error. It is intended for static
// images.
func MustParseImage(rows ...string) *Image {
	img, err := ParseImage(rows...)
	if err != nil {
		panic(err)
	}
	return img
}

// Rows returns the image's height.
func (img *Image) Rows() int { return img.rows }

// Cols returns the image's width.
func (img *Image) Cols() int { return img.cols }

// At returns true if the cell at (x, y) is set. Cells outside of the image are
// clear.
func (img *Image) At(x, y int) bool {
	if x < 0 || y < 0 || x >= img.cols || y >= img.rows {
		return false
	}
	return img.cells[y*img.cols+x]
}

// Offset returns the translation from image to matrix coordinates that aligns
// the center of a rows x cols image with the center of b.
//
// Matrix cell (x, y) shows image cell (x-offX, y-offY).
func Offset(b geometry.Bounds, rows, cols int) (offX, offY int) {
	return b.Width/2 - cols/2, b.Height/2 - rows/2
}
