// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package blend animates a matrix between colors and images over time.
//
// An Engine holds a current and target color, and a current and target
// opacity mask covering every logical cell of its Target. Each call to Update
// moves the current state towards the target by a factor proportional to the
// time elapsed since the blend began, then re-renders the whole matrix. Once
// the blend's duration has elapsed, the current state snaps to the target.
//
// Optional Prometheus monitoring can be enabled by registering on startup
// (generally init()) via RegisterMonitoring.
package blend

import (
	"time"

	"github.com/danjacques/gopixelmatrix/geometry"
	"github.com/danjacques/gopixelmatrix/matrix"
	"github.com/danjacques/gopixelmatrix/pixel"
	"github.com/danjacques/gopixelmatrix/support/logging"
)

// Target is the matrix that an Engine renders onto.
//
// *matrix.Controller is a Target.
type Target interface {
	// Bounds returns the logical bounding box of the matrix.
	Bounds() geometry.Bounds
	// Len returns the number of elements in the matrix.
	Len() int
	// Color returns the matrix's current color.
	Color() pixel.P
	// MaxBrightness returns the brightness scale applied to every write.
	MaxBrightness() uint8
	// ForEach calls fn for every element of the matrix.
	ForEach(fn func(geometry.Entry))
	// WriteIndex writes an already-scaled color to a physical element.
	WriteIndex(index int, color pixel.P)
	// Clear turns every element off.
	Clear()
	// Show pushes pending writes.
	Show() error
}

var _ Target = (*matrix.Controller)(nil)

// Options configures an Engine.
type Options struct {
	// Clock, if not nil, is the clock to use. If nil, SystemClock will be used.
	Clock Clock

	// Logger, if not nil, is the logger to use.
	Logger logging.L
}

// Engine blends a Target between states.
//
// Engine is not safe for concurrent use. While a blend is in progress, the
// Engine expects to be the only writer to its Target.
type Engine struct {
	target Target
	clock  Clock
	logger logging.L

	// bounds is the Target's bounding box, captured at construction. Both masks
	// are bounds.Width x bounds.Height, row-major.
	bounds      geometry.Bounds
	currentMask []byte
	targetMask  []byte

	currentColor pixel.P
	targetColor  pixel.P

	start    time.Time
	duration time.Duration
	factor   uint8

	blending      bool
	blendingImage bool
	blendingColor bool
}

// New creates an Engine that renders onto t.
//
// The Engine's masks are sized from t's bounds at construction. If t is
// re-initialized with a different table, a new Engine must be created.
func New(t Target, o Options) *Engine {
	e := Engine{
		target:       t,
		clock:        o.Clock,
		logger:       logging.Must(o.Logger),
		bounds:       t.Bounds(),
		currentColor: t.Color(),
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	e.targetColor = e.currentColor

	if t.Len() == 0 {
		e.logger.Errorf("Blend engine created for a matrix with no elements.")
	}

	area := e.bounds.Area()
	e.currentMask = make([]byte, area)
	e.targetMask = make([]byte, area)
	return &e
}

// BlendToColor begins blending towards c over d.
//
// A frame is rendered immediately. Any blend already in progress is redirected
// from its current state.
func (e *Engine) BlendToColor(c pixel.P, d time.Duration) error {
	e.targetColor = c
	e.blendingColor = true
	return e.begin(d, channelColor)
}

// BlendToImage begins blending the mask towards img, centered on the matrix,
// over d. The color is left unchanged.
func (e *Engine) BlendToImage(img *matrix.Image, d time.Duration) error {
	e.setTargetMask(img)
	e.blendingImage = true
	return e.begin(d, channelImage)
}

// BlendToImageColor begins blending the mask towards img and the color towards
// c, together, over d.
func (e *Engine) BlendToImageColor(img *matrix.Image, c pixel.P, d time.Duration) error {
	e.setTargetMask(img)
	e.targetColor = c
	e.blendingImage, e.blendingColor = true, true
	return e.begin(d, channelImageColor)
}

func (e *Engine) setTargetMask(img *matrix.Image) {
	offX, offY := matrix.Offset(e.bounds, img.Rows(), img.Cols())
	for y := 0; y < e.bounds.Height; y++ {
		for x := 0; x < e.bounds.Width; x++ {
			v := byte(0)
			if img.At(x-offX, y-offY) {
				v = 0xFF
			}
			e.targetMask[y*e.bounds.Width+x] = v
		}
	}
}

func (e *Engine) begin(d time.Duration, channel string) error {
	if d < 0 {
		d = 0
	}
	e.start = e.clock.Now()
	e.duration = d
	e.factor = 0

	e.logger.Debugf("Beginning %s blend over %s (color %s => %s).", channel, d, e.currentColor, e.targetColor)
	monitorStart(channel, e.blending)
	e.blending = true

	// Prime a frame at factor 0 so the blend is visible before the first Update.
	return e.render()
}

// Update advances an in-progress blend to the current time and renders a
// frame. If no blend is in progress, Update does nothing.
func (e *Engine) Update() error {
	if !e.blending {
		return nil
	}

	elapsed := e.clock.Now().Sub(e.start)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > e.duration {
		elapsed = e.duration
	}
	e.factor = blendFactor(elapsed, e.duration)

	if e.blendingColor {
		e.currentColor = pixel.P{
			Red:   interpolate(e.currentColor.Red, e.targetColor.Red, e.factor),
			Green: interpolate(e.currentColor.Green, e.targetColor.Green, e.factor),
			Blue:  interpolate(e.currentColor.Blue, e.targetColor.Blue, e.factor),
		}
	}
	if e.blendingImage {
		for i, v := range e.currentMask {
			e.currentMask[i] = interpolate(v, e.targetMask[i], e.factor)
		}
	}

	done := elapsed >= e.duration
	if done {
		if e.blendingColor {
			e.currentColor = e.targetColor
		}
		if e.blendingImage {
			copy(e.currentMask, e.targetMask)
		}
	}

	err := e.render()
	monitorFrame()

	if done {
		e.blending, e.blendingImage, e.blendingColor = false, false, false
		e.logger.Debugf("Blend complete (color %s).", e.currentColor)
		monitorComplete()
	}
	return err
}

// render draws the current state onto the target and shows it.
func (e *Engine) render() error {
	maxBrightness := e.target.MaxBrightness()

	e.target.Clear()
	e.target.ForEach(func(ent geometry.Entry) {
		mask := byte(0xFF)
		if e.blendingImage {
			mask = e.maskAt(int(ent.X), int(ent.Y))
		}
		e.target.WriteIndex(int(ent.Index), e.currentColor.Scaled(mask).Scaled(maxBrightness))
	})
	return e.target.Show()
}

// maskAt returns the current mask value at (x, y). Cells outside of the mask
// are transparent.
func (e *Engine) maskAt(x, y int) byte {
	if !e.bounds.Contains(x, y) {
		return 0
	}
	return e.currentMask[y*e.bounds.Width+x]
}

// Blending returns true if a blend is in progress.
func (e *Engine) Blending() bool { return e.blending }

// Color returns the current, interpolated color.
func (e *Engine) Color() pixel.P { return e.currentColor }

// TargetColor returns the color being blended towards.
func (e *Engine) TargetColor() pixel.P { return e.targetColor }

// Mask returns a copy of the current, interpolated mask.
func (e *Engine) Mask() []byte { return append([]byte(nil), e.currentMask...) }

// Bounds returns the dimensions of the mask.
func (e *Engine) Bounds() geometry.Bounds { return e.bounds }

// Factor returns the interpolation factor computed by the most recent Update,
// from 0 (blend start) to 255 (at target).
func (e *Engine) Factor() uint8 { return e.factor }

// blendFactor scales elapsed into [0, 255] over d, at millisecond resolution.
func blendFactor(elapsed, d time.Duration) uint8 {
	dms := int64(d / time.Millisecond)
	if dms <= 0 {
		return 0xFF
	}
	f := int64(elapsed/time.Millisecond) * 0xFF / dms
	if f > 0xFF {
		f = 0xFF
	}
	return uint8(f)
}

// interpolate moves cur towards tgt by factor/255 of the remaining distance.
func interpolate(cur, tgt, factor uint8) uint8 {
	delta := int32(int16(tgt)-int16(cur)) * int32(factor) / 0xFF
	return uint8(int32(cur) + delta)
}
