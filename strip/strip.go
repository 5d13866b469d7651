// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package strip defines the driver for a one-dimensional strip of
// individually addressable elements, and implementations of it.
//
// A Driver owns a back buffer. SetPixelColor and Clear change only the back
// buffer; Show pushes the back buffer to the hardware.
//
// Memory keeps everything in-process and is suitable for tests and dry runs.
// Pusher sends every Show to a PixelPusher controller over UDP.
//
// Optional Prometheus monitoring can be enabled by registering on startup
// (generally init()) via RegisterMonitoring, and wrapping a Driver with
// Monitor.
package strip

import (
	"github.com/danjacques/gopixelmatrix/pixel"
)

// Color is a packed 0x00RRGGBB color value.
type Color uint32

// PackColor packs an RGB triple.
func PackColor(r, g, b uint8) Color { return Color(r)<<16 | Color(g)<<8 | Color(b) }

// ColorOf packs p.
func ColorOf(p pixel.P) Color { return PackColor(p.Red, p.Green, p.Blue) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Pixel unpacks c.
func (c Color) Pixel() pixel.P { return pixel.RGB(c.R(), c.G(), c.B()) }

// Driver is a strip driver.
//
// Drivers are not safe for concurrent use.
type Driver interface {
	// SetPin selects the output that this driver addresses. It must be called
	// before Begin.
	SetPin(pin int)

	// Begin prepares the output.
	Begin() error

	// SetLength resizes the back buffer to n elements, clearing it.
	SetLength(n int)

	// Len returns the number of elements in the back buffer.
	Len() int

	// SetPixelColor sets element i in the back buffer. Out-of-range indices
	// are ignored.
	SetPixelColor(i int, c Color)

	// Color composes a packed color from its channels.
	Color(r, g, b uint8) Color

	// Show pushes the back buffer to the output.
	Show() error

	// Clear sets every element in the back buffer to black.
	Clear()
}
