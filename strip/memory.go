// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

package strip

import (
	"github.com/danjacques/gopixelmatrix/pixel"
)

// Memory is an in-process Driver.
//
// Show copies the back buffer to the front buffer, which can be inspected
// through Shown.
type Memory struct {
	pin   int
	begun bool
	shows int

	back  pixel.Buffer
	front pixel.Buffer
}

var _ Driver = (*Memory)(nil)

// SetPin implements Driver.
func (m *Memory) SetPin(pin int) { m.pin = pin }

// Pin returns the pin supplied to SetPin.
func (m *Memory) Pin() int { return m.pin }

// Begin implements Driver.
func (m *Memory) Begin() error {
	m.begun = true
	return nil
}

// Begun returns true if Begin has been called.
func (m *Memory) Begun() bool { return m.begun }

// SetLength implements Driver.
func (m *Memory) SetLength(n int) { m.back.Reset(n) }

// Len implements Driver.
func (m *Memory) Len() int { return m.back.Len() }

// SetPixelColor implements Driver.
func (m *Memory) SetPixelColor(i int, c Color) { m.back.SetPixel(i, c.Pixel()) }

// Color implements Driver.
func (m *Memory) Color(r, g, b uint8) Color { return PackColor(r, g, b) }

// Show implements Driver.
func (m *Memory) Show() error {
	m.front.CloneFrom(&m.back)
	m.shows++
	return nil
}

// Clear implements Driver.
func (m *Memory) Clear() { m.back.Zero() }

// Pending returns the back buffer: the state that the next Show will push.
func (m *Memory) Pending() *pixel.Buffer { return &m.back }

// Shown returns the state pushed by the most recent Show.
func (m *Memory) Shown() *pixel.Buffer { return &m.front }

// Shows returns the number of times Show has been called.
func (m *Memory) Shows() int { return m.shows }
