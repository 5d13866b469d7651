// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package topology

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Built-in kinds", func() {
	for _, tc := range []struct {
		kind Kind
		size int
	}{
		{Round, 12},
		{Hexagonal, 14},
		{Triangular, 16},
	} {
		tc := tc

		Context(tc.kind.String(), func() {
			t := Builtin(tc.kind)

			It("has the expected dimensions", func() {
				Expect(t.Validate()).To(Succeed())
				Expect(t.Rows).To(Equal(tc.size))
				Expect(t.Cols).To(Equal(tc.size))
			})

			It("numbers elements contiguously without duplicates", func() {
				seen := make(map[byte]bool)
				for _, c := range t.Cells {
					if c == Inactive {
						continue
					}
					Expect(seen).ToNot(HaveKey(c))
					seen[c] = true
				}
				Expect(seen).To(HaveLen(t.Active()))
				for i := 0; i < len(seen); i++ {
					Expect(seen).To(HaveKey(byte(i)))
				}
			})

			It("uses every row", func() {
				for y := 0; y < t.Rows; y++ {
					active := 0
					for x := 0; x < t.Cols; x++ {
						if t.At(x, y) != Inactive {
							active++
						}
					}
					Expect(active).To(BeNumerically(">", 0), "row %d", y)
				}
			})
		})
	}

	It("wires rows in serpentine order", func() {
		t := Builtin(Triangular)
		// Row 0 spans columns 7-8 left to right, row 1 the same columns right
		// to left.
		Expect(t.At(7, 0)).To(Equal(byte(0)))
		Expect(t.At(8, 0)).To(Equal(byte(1)))
		Expect(t.At(8, 1)).To(Equal(byte(2)))
		Expect(t.At(7, 1)).To(Equal(byte(3)))
	})

	It("has no built-in table for custom matrices", func() {
		Expect(Builtin(Custom)).To(BeNil())
	})
})

var _ = Describe("KindFlag", func() {
	It("parses kind names", func() {
		var kf KindFlag
		Expect(kf.Set("Hexagonal")).To(Succeed())
		Expect(kf.Value()).To(Equal(Hexagonal))
		Expect(kf.String()).To(Equal("hexagonal"))
	})

	It("rejects unknown kinds", func() {
		var kf KindFlag
		Expect(kf.Set("square")).ToNot(Succeed())
	})

	It("lists values in enumeration order", func() {
		Expect(KindFlagValues()).To(Equal("round, hexagonal, triangular, custom"))
	})
})
