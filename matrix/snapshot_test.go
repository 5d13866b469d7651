// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package matrix

import (
	"github.com/danjacques/gopixelmatrix/pixel"
	"github.com/danjacques/gopixelmatrix/strip"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Snapshot", func() {
	It("exports state as JSON", func() {
		c := New(Options{Driver: &strip.Memory{}})
		Expect(c.InitTable(gridTable(3), 0)).To(Succeed())
		c.SetMaxBrightness(128)
		Expect(c.SetColor(pixel.RGB(10, 20, 30))).To(Succeed())

		s := c.Snapshot()
		Expect(*s).To(Equal(State{
			Width:         3,
			Height:        3,
			Color:         pixel.RGB(10, 20, 30),
			MaxBrightness: 128,
		}))

		v, err := s.JSON()
		Expect(err).ToNot(HaveOccurred())
		Expect(v).To(MatchJSON(`{"width": 3, "height": 3, "color": [10, 20, 30], "maxBrightness": 128}`))
	})
})
