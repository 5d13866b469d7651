// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package pixel defines the color value of a single matrix element and the
// contiguous buffer that holds a strip's worth of them.
package pixel

import (
	"fmt"
)

// P is the linear RGB state of a single pixel.
type P struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// RGB constructs a P from its channels.
func RGB(r, g, b uint8) P { return P{Red: r, Green: g, Blue: b} }

func (p P) String() string { return fmt.Sprintf("(%d, %d, %d)", p.Red, p.Green, p.Blue) }

// Scaled returns p with every channel scaled by s (see Scale).
func (p P) Scaled(s uint8) P {
	return P{
		Red:   Scale(p.Red, s),
		Green: Scale(p.Green, s),
		Blue:  Scale(p.Blue, s),
	}
}

// IsBlack returns true if every channel of p is zero.
func (p P) IsBlack() bool { return p.Red == 0 && p.Green == 0 && p.Blue == 0 }

// Scale scales v by the 0-255 scalar s, as v*s/255 with truncation.
//
// Scale(v, 255) == v and Scale(v, 0) == 0 for every v.
func Scale(v, s uint8) uint8 { return uint8(uint16(v) * uint16(s) / 255) }
