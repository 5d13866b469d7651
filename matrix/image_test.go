// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package matrix

import (
	"github.com/danjacques/gopixelmatrix/geometry"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Image", func() {
	It("parses text rows", func() {
		img := MustParseImage(
			"#.X",
			"x*1",
		)
		Expect(img.Rows()).To(Equal(2))
		Expect(img.Cols()).To(Equal(3))
		Expect(img.At(0, 0)).To(BeTrue())
		Expect(img.At(1, 0)).To(BeFalse())
		Expect(img.At(2, 1)).To(BeTrue())
	})

	It("treats cells outside of the image as clear", func() {
		img := MustParseImage("#")
		Expect(img.At(-1, 0)).To(BeFalse())
		Expect(img.At(0, 1)).To(BeFalse())
	})

	It("rejects ragged rows", func() {
		_, err := ParseImage("##", "#")
		Expect(err).To(HaveOccurred())

		_, err = NewImage(2, 2, []bool{true})
		Expect(err).To(HaveOccurred())
	})

	It("builds from row slices", func() {
		img, err := ImageFromRows([][]bool{{true, false}, {false, true}})
		Expect(err).ToNot(HaveOccurred())
		Expect(img.At(1, 1)).To(BeTrue())
	})

	Context("centering", func() {
		It("aligns image and matrix centers", func() {
			for _, tc := range []struct {
				bounds     geometry.Bounds
				rows, cols int
				x, y       int
			}{
				{geometry.Bounds{Width: 5, Height: 5}, 1, 1, 2, 2},
				{geometry.Bounds{Width: 5, Height: 5}, 3, 3, 1, 1},
				{geometry.Bounds{Width: 12, Height: 12}, 4, 6, 3, 4},
				{geometry.Bounds{Width: 4, Height: 4}, 8, 8, -2, -2},
			} {
				x, y := Offset(tc.bounds, tc.rows, tc.cols)
				Expect([]int{x, y}).To(Equal([]int{tc.x, tc.y}), "%v %dx%d", tc.bounds, tc.cols, tc.rows)

				// The image center lands on the matrix center.
				Expect(tc.cols/2 + x).To(Equal(tc.bounds.Width / 2))
				Expect(tc.rows/2 + y).To(Equal(tc.bounds.Height / 2))
			}
		})
	})
})
