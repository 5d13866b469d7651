// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package blend

import (
	"time"

	"github.com/danjacques/gopixelmatrix/geometry"
	"github.com/danjacques/gopixelmatrix/matrix"
	"github.com/danjacques/gopixelmatrix/pixel"
	"github.com/danjacques/gopixelmatrix/strip"
	"github.com/danjacques/gopixelmatrix/topology"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func gridTable(size int) *topology.Table {
	cells := make([]byte, size*size)
	for i := range cells {
		cells[i] = byte(i)
	}
	return &topology.Table{Rows: size, Cols: size, Cells: cells}
}

var (
	black = pixel.RGB(0, 0, 0)
	white = pixel.RGB(255, 255, 255)
	red   = pixel.RGB(255, 0, 0)
)

var _ = Describe("interpolation", func() {
	It("computes a truncated factor over the duration", func() {
		for _, tc := range []struct {
			elapsed, d time.Duration
			f          uint8
		}{
			{0, time.Second, 0},
			{500 * time.Millisecond, time.Second, 127},
			{time.Second, time.Second, 255},
			{2 * time.Second, time.Second, 255},
			{999 * time.Millisecond, time.Second, 254},
			{0, 0, 255},
			{0, 500 * time.Microsecond, 255},
		} {
			Expect(blendFactor(tc.elapsed, tc.d)).To(Equal(tc.f), "%s of %s", tc.elapsed, tc.d)
		}
	})

	It("moves values in both directions without wrapping", func() {
		Expect(interpolate(0, 255, 127)).To(Equal(uint8(127)))
		Expect(interpolate(255, 0, 255)).To(Equal(uint8(0)))
		Expect(interpolate(200, 100, 128)).To(Equal(uint8(150)))
		Expect(interpolate(127, 0, 127)).To(Equal(uint8(64)))
		Expect(interpolate(42, 42, 200)).To(Equal(uint8(42)))
		Expect(interpolate(0, 255, 0)).To(Equal(uint8(0)))
	})
})

var _ = Describe("Engine", func() {
	for _, s := range []geometry.Strategy{geometry.Dense, geometry.Sparse} {
		s := s

		Context("with "+s.String()+" geometry", func() {
			var clock *manualClock
			var drv *strip.Memory
			var c *matrix.Controller
			var e *Engine

			BeforeEach(func() {
				clock = &manualClock{now: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC)}
				drv = &strip.Memory{}
				c = matrix.New(matrix.Options{Driver: drv, Strategy: s})
				Expect(c.InitTable(gridTable(5), 0)).To(Succeed())
				Expect(c.SetColor(black)).To(Succeed())

				e = New(c, Options{Clock: clock})
			})

			It("starts idle with the controller's color", func() {
				Expect(e.Blending()).To(BeFalse())
				Expect(e.Color()).To(Equal(black))
				Expect(e.Bounds()).To(Equal(geometry.Bounds{Width: 5, Height: 5}))
				Expect(e.Mask()).To(Equal(make([]byte, 25)))
			})

			It("does nothing on Update while idle", func() {
				shows := drv.Shows()
				Expect(e.Update()).To(Succeed())
				Expect(drv.Shows()).To(Equal(shows))
			})

			Context("blending to a color", func() {
				It("renders a priming frame immediately", func() {
					shows := drv.Shows()
					Expect(e.BlendToColor(red, time.Second)).To(Succeed())

					Expect(drv.Shows()).To(Equal(shows + 1))
					Expect(e.Blending()).To(BeTrue())
					Expect(e.Factor()).To(Equal(uint8(0)))
					Expect(e.TargetColor()).To(Equal(red))
					Expect(drv.Shown().Pixel(0)).To(Equal(black))
				})

				It("reaches the midpoint halfway through", func() {
					Expect(e.BlendToColor(red, time.Second)).To(Succeed())

					clock.Advance(500 * time.Millisecond)
					Expect(e.Update()).To(Succeed())

					Expect(e.Factor()).To(Equal(uint8(127)))
					Expect(e.Color()).To(Equal(pixel.RGB(127, 0, 0)))
					Expect(drv.Shown().Pixel(24)).To(Equal(pixel.RGB(127, 0, 0)))
					Expect(e.Blending()).To(BeTrue())
				})

				It("increases monotonically", func() {
					Expect(e.BlendToColor(white, time.Second)).To(Succeed())

					var factors []uint8
					var values []uint8
					for _, step := range []time.Duration{0, 500 * time.Millisecond, 500 * time.Millisecond} {
						clock.Advance(step)
						Expect(e.Update()).To(Succeed())
						factors = append(factors, e.Factor())
						values = append(values, e.Color().Green)
					}

					Expect(factors).To(Equal([]uint8{0, 127, 255}))
					Expect(values).To(Equal([]uint8{0, 127, 255}))
				})

				It("snaps to the target and goes idle once the duration elapses", func() {
					Expect(e.BlendToColor(pixel.RGB(201, 13, 77), time.Second)).To(Succeed())

					clock.Advance(300 * time.Millisecond)
					Expect(e.Update()).To(Succeed())
					Expect(e.Color()).ToNot(Equal(pixel.RGB(201, 13, 77)))

					clock.Advance(5 * time.Second)
					Expect(e.Update()).To(Succeed())
					Expect(e.Color()).To(Equal(pixel.RGB(201, 13, 77)))
					Expect(e.Factor()).To(Equal(uint8(255)))
					Expect(e.Blending()).To(BeFalse())
					Expect(drv.Shown().Pixels()).To(HaveEach(pixel.RGB(201, 13, 77)))

					shows := drv.Shows()
					Expect(e.Update()).To(Succeed())
					Expect(drv.Shows()).To(Equal(shows))
				})

				It("completes a zero-length blend on the next Update", func() {
					Expect(e.BlendToColor(red, 0)).To(Succeed())
					Expect(e.Update()).To(Succeed())
					Expect(e.Color()).To(Equal(red))
					Expect(e.Blending()).To(BeFalse())
				})

				It("treats a clock that moves backwards as no progress", func() {
					Expect(e.BlendToColor(red, time.Second)).To(Succeed())
					clock.Advance(-time.Minute)
					Expect(e.Update()).To(Succeed())
					Expect(e.Factor()).To(Equal(uint8(0)))
					Expect(e.Color()).To(Equal(black))
				})

				It("applies the controller's brightness after blending", func() {
					c.SetMaxBrightness(128)
					Expect(e.BlendToColor(pixel.RGB(10, 20, 30), 0)).To(Succeed())
					Expect(e.Update()).To(Succeed())

					Expect(e.Color()).To(Equal(pixel.RGB(10, 20, 30)))
					Expect(drv.Shown().Pixel(3)).To(Equal(pixel.RGB(5, 10, 15)))
				})

				It("redirects an interrupted blend from its current state", func() {
					Expect(e.BlendToColor(white, time.Second)).To(Succeed())
					clock.Advance(500 * time.Millisecond)
					Expect(e.Update()).To(Succeed())
					Expect(e.Color().Red).To(Equal(uint8(127)))

					Expect(e.BlendToColor(black, time.Second)).To(Succeed())
					Expect(e.Color().Red).To(Equal(uint8(127)))
					Expect(drv.Shown().Pixel(0).Red).To(Equal(uint8(127)))

					clock.Advance(500 * time.Millisecond)
					Expect(e.Update()).To(Succeed())
					Expect(e.Color().Red).To(Equal(uint8(64)))

					clock.Advance(500 * time.Millisecond)
					Expect(e.Update()).To(Succeed())
					Expect(e.Color()).To(Equal(black))
					Expect(e.Blending()).To(BeFalse())
				})
			})

			Context("blending to an image", func() {
				dot := matrix.MustParseImage("#")

				It("fades the centered cells in", func() {
					Expect(e.BlendToImageColor(dot, white, time.Second)).To(Succeed())
					Expect(drv.Shown().Pixels()).To(HaveEach(black))

					clock.Advance(500 * time.Millisecond)
					Expect(e.Update()).To(Succeed())
					Expect(e.Mask()[12]).To(Equal(uint8(127)))
					Expect(drv.Shown().Pixel(12)).To(Equal(pixel.RGB(63, 63, 63)))
					Expect(drv.Shown().Pixel(11)).To(Equal(black))

					clock.Advance(500 * time.Millisecond)
					Expect(e.Update()).To(Succeed())
					Expect(e.Blending()).To(BeFalse())

					want := make([]byte, 25)
					want[12] = 0xFF
					Expect(e.Mask()).To(Equal(want))

					for i, p := range drv.Shown().Pixels() {
						if i == 12 {
							Expect(p).To(Equal(white))
						} else {
							Expect(p).To(Equal(black), "element %d", i)
						}
					}
				})

				It("keeps the current color for an image-only blend", func() {
					Expect(e.BlendToColor(red, 0)).To(Succeed())
					Expect(e.Update()).To(Succeed())

					Expect(e.BlendToImage(dot, 0)).To(Succeed())
					Expect(e.Update()).To(Succeed())
					Expect(e.Color()).To(Equal(red))
					Expect(drv.Shown().Pixel(12)).To(Equal(red))
					Expect(drv.Shown().Pixel(0)).To(Equal(black))
				})

				It("ignores the mask for color blends started after an image blend completes", func() {
					Expect(e.BlendToImageColor(dot, white, 0)).To(Succeed())
					Expect(e.Update()).To(Succeed())

					Expect(e.BlendToColor(red, 0)).To(Succeed())
					Expect(e.Update()).To(Succeed())
					Expect(drv.Shown().Pixels()).To(HaveEach(red))
				})

				It("keeps the mask for color blends that interrupt an image blend", func() {
					Expect(e.BlendToImageColor(dot, white, time.Second)).To(Succeed())
					Expect(e.BlendToColor(red, 0)).To(Succeed())

					clock.Advance(time.Second)
					Expect(e.Update()).To(Succeed())
					Expect(drv.Shown().Pixel(12)).To(Equal(red))
					Expect(drv.Shown().Pixel(0)).To(Equal(black))
				})
			})
		})
	}

	It("treats elements outside of a sparse mask as transparent", func() {
		t := topology.MustFromRows([][]byte{
			{topology.Inactive, 0},
			{topology.Inactive, 1},
		})

		render := func(s geometry.Strategy) []pixel.P {
			drv := &strip.Memory{}
			c := matrix.New(matrix.Options{Driver: drv, Strategy: s})
			Expect(c.InitTable(t, 0)).To(Succeed())

			e := New(c, Options{Clock: &manualClock{}})
			Expect(e.BlendToImageColor(matrix.MustParseImage("##", "##"), white, 0)).To(Succeed())
			Expect(e.Update()).To(Succeed())
			return drv.Shown().Pixels()
		}

		Expect(render(geometry.Dense)).To(Equal([]pixel.P{white, white}))
		Expect(render(geometry.Sparse)).To(Equal([]pixel.P{black, black}))
	})

	It("reports an engine built for an empty matrix", func() {
		core, logs := observer.New(zapcore.ErrorLevel)
		c := matrix.New(matrix.Options{Driver: &strip.Memory{}})

		e := New(c, Options{Clock: &manualClock{}, Logger: zap.New(core).Sugar()})
		Expect(logs.Len()).To(Equal(1))

		Expect(e.BlendToColor(red, 0)).To(Succeed())
		Expect(e.Update()).To(Succeed())
		Expect(e.Mask()).To(BeEmpty())
	})
})
