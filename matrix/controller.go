// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package matrix renders colors and monochrome images onto a two-dimensional
// arrangement of strip elements.
//
// A Controller binds a strip.Driver to a geometry.Mapper built from a
// topology.Table. Every color it writes is first scaled by the controller's
// maximum brightness.
//
// Coordinates and image cells that do not land on an element are ignored;
// nothing is ever written outside of the strip.
//
// Optional Prometheus monitoring can be enabled by registering on startup
// (generally init()) via RegisterMonitoring.
package matrix

import (
	"github.com/danjacques/gopixelmatrix/geometry"
	"github.com/danjacques/gopixelmatrix/pixel"
	"github.com/danjacques/gopixelmatrix/strip"
	"github.com/danjacques/gopixelmatrix/support/logging"
	"github.com/danjacques/gopixelmatrix/topology"

	"github.com/pkg/errors"
)

// DefaultColor is a Controller's color before one is set.
var DefaultColor = pixel.RGB(0, 0, 255)

// Options configures a Controller.
type Options struct {
	// Driver is the strip driver to render through. It must not be nil.
	Driver strip.Driver

	// Strategy is the geometry storage strategy.
	Strategy geometry.Strategy

	// Logger, if not nil, is the logger to use.
	Logger logging.L
}

// Controller renders onto a matrix.
//
// Controller is not safe for concurrent use.
type Controller struct {
	driver   strip.Driver
	strategy geometry.Strategy
	logger   logging.L

	mapper        geometry.Mapper
	color         pixel.P
	maxBrightness uint8
}

// New creates a Controller. It must be initialized with Init or InitTable
// before it addresses any elements.
func New(o Options) *Controller {
	if o.Driver == nil {
		panic("no Driver configured")
	}

	return &Controller{
		driver:        o.Driver,
		strategy:      o.Strategy,
		logger:        logging.Must(o.Logger),
		mapper:        geometry.Build(&topology.Table{}, o.Strategy),
		color:         DefaultColor,
		maxBrightness: 255,
	}
}

// Init initializes c with a built-in matrix kind on the given output pin.
//
// topology.Custom has no built-in table; Init does nothing for it. Use
// InitTable instead.
func (c *Controller) Init(kind topology.Kind, pin int) error {
	if kind == topology.Custom {
		return nil
	}

	t := topology.Builtin(kind)
	if t == nil {
		return errors.Errorf("unknown matrix kind %d", kind)
	}
	return c.InitTable(t, pin)
}

// InitTable initializes c with t on the given output pin.
//
// The strip is sized to fit the highest element index in t, cleared, and
// shown. InitTable may be called again to switch to a different table.
func (c *Controller) InitTable(t *topology.Table, pin int) error {
	if err := t.Validate(); err != nil {
		return errors.Wrap(err, "invalid topology")
	}

	c.mapper = geometry.Build(t, c.strategy)

	c.driver.SetPin(pin)
	if err := c.driver.Begin(); err != nil {
		return errors.Wrapf(err, "could not begin strip on pin %d", pin)
	}
	c.driver.SetLength(c.mapper.MaxIndex() + 1)
	c.driver.Clear()

	c.logger.Debugf("Initialized %s matrix on pin %d: %d element(s) in %s, strip length %d.",
		c.strategy, pin, c.mapper.Len(), c.mapper.Bounds(), c.driver.Len())
	monitorInit(c)

	return c.show()
}

// SetColor fills every element with color and shows the result.
func (c *Controller) SetColor(color pixel.P) error {
	c.color = color

	sc := c.scaledColor(color)
	c.mapper.ForEach(func(e geometry.Entry) {
		c.driver.SetPixelColor(int(e.Index), sc)
	})
	monitorRender(renderColor)
	return c.show()
}

// SetMaxBrightness sets the brightness scale applied to every subsequent
// write. It does not re-render.
func (c *Controller) SetMaxBrightness(b uint8) { c.maxBrightness = b }

// MaxBrightness returns the brightness scale.
func (c *Controller) MaxBrightness() uint8 { return c.maxBrightness }

// SetImage lights the elements covered by the set cells of img, centered on
// the matrix, with the current color. All other elements are turned off.
func (c *Controller) SetImage(img *Image) error {
	c.displayImage(img)
	monitorRender(renderImage)
	return c.show()
}

// SetImageColor sets the current color to color, then behaves as SetImage.
func (c *Controller) SetImageColor(img *Image, color pixel.P) error {
	c.color = color
	return c.SetImage(img)
}

func (c *Controller) displayImage(img *Image) {
	offX, offY := Offset(c.Bounds(), img.Rows(), img.Cols())

	c.driver.Clear()
	sc := c.scaledColor(c.color)
	c.mapper.ForEach(func(e geometry.Entry) {
		if img.At(int(e.X)-offX, int(e.Y)-offY) {
			c.driver.SetPixelColor(int(e.Index), sc)
		}
	})
}

// SetPixelXY sets the element at logical (x, y) to color.
//
// If there is no element at (x, y), SetPixelXY does nothing. SetPixelXY does
// not show; call Show afterwards.
func (c *Controller) SetPixelXY(x, y int, color pixel.P) {
	if x < 0 || y < 0 {
		return
	}
	if idx, ok := c.mapper.Lookup(x, y); ok {
		c.driver.SetPixelColor(idx, c.scaledColor(color))
	}
}

// Show pushes pending writes to the strip.
func (c *Controller) Show() error { return c.show() }

// Clear turns every element off. It does not show.
func (c *Controller) Clear() { c.driver.Clear() }

// Color returns the current color, before brightness scaling.
func (c *Controller) Color() pixel.P { return c.color }

// Width returns the logical width of the matrix.
func (c *Controller) Width() int { return c.mapper.Bounds().Width }

// Height returns the logical height of the matrix.
func (c *Controller) Height() int { return c.mapper.Bounds().Height }

// Bounds returns the logical bounding box of the matrix.
func (c *Controller) Bounds() geometry.Bounds { return c.mapper.Bounds() }

// Len returns the number of elements in the matrix.
func (c *Controller) Len() int { return c.mapper.Len() }

// ForEach calls fn for every element in row-major order.
func (c *Controller) ForEach(fn func(geometry.Entry)) { c.mapper.ForEach(fn) }

// WriteIndex writes color to the physical element at index without any
// scaling. It does not show.
func (c *Controller) WriteIndex(index int, color pixel.P) {
	c.driver.SetPixelColor(index, c.driver.Color(color.Red, color.Green, color.Blue))
}

func (c *Controller) scaledColor(color pixel.P) strip.Color {
	sc := color.Scaled(c.maxBrightness)
	return c.driver.Color(sc.Red, sc.Green, sc.Blue)
}

func (c *Controller) show() error {
	if err := c.driver.Show(); err != nil {
		return errors.Wrap(err, "could not show strip")
	}
	return nil
}
